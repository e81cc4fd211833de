package takatracker

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// This file implements the backup format: a CSV file that round-trips the
// whole ledger. Each row carries a discriminator column telling whether it
// describes an account or a transaction, so a single file holds both
// collections. Fields containing commas or quotes are quoted, embedded
// quotes are doubled (RFC 4180).

// backupHeader is the fixed first row of a backup file.
var backupHeader = []string{"Data Type", "ID", "Name/Category", "Type", "Amount/Balance", "Account ID", "Date", "Note", "Person"}

// Row discriminators.
const (
	rowAccount     = "ACCOUNT"
	rowTransaction = "TRANSACTION"
)

// ExportCSV writes the ledger in the backup format: one ACCOUNT row per
// account (transaction-only columns left empty), then one TRANSACTION row
// per transaction with the Name column repurposed as category.
//
// For transfers the Person column carries the destination account id; the
// discriminating Type column keeps the two uses apart.
func ExportCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(backupHeader); err != nil {
		return fmt.Errorf("cannot write backup header: %w", err)
	}
	for a := range l.Accounts() {
		row := []string{rowAccount, a.ID, a.Name, string(a.Type), a.Balance.Decimal().String(), "", "", "", ""}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write account row: %w", err)
		}
	}
	for tx := range l.Transactions() {
		person := tx.PersonName
		if tx.Type == Transfer {
			person = tx.ToAccountID
		}
		row := []string{rowTransaction, tx.ID, tx.Category, string(tx.Type), tx.Amount.Decimal().String(), tx.AccountID, tx.Date.String(), tx.Note, person}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write transaction row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV decodes a backup file into a snapshot. The import is strict and
// all-or-nothing: any row that fails to parse aborts the whole import with
// ErrMalformedImport, and nothing is mutated. A successful decode is meant
// to fully replace the current ledger via ReplaceAll.
func ImportCSV(r io.Reader) (*Snapshot, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(backupHeader)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: cannot read header: %v", ErrMalformedImport, err)
	}
	for i, want := range backupHeader {
		if header[i] != want {
			return nil, fmt.Errorf("%w: unexpected header column %q, want %q", ErrMalformedImport, header[i], want)
		}
	}

	s := &Snapshot{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedImport, err)
		}
		line, _ := cr.FieldPos(0)
		switch row[0] {
		case rowAccount:
			a, err := decodeAccountRow(row)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedImport, line, err)
			}
			s.Accounts = append(s.Accounts, a)
		case rowTransaction:
			tx, err := decodeTransactionRow(row)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedImport, line, err)
			}
			s.Transactions = append(s.Transactions, tx)
		default:
			return nil, fmt.Errorf("%w: line %d: unknown row type %q", ErrMalformedImport, line, row[0])
		}
	}

	if len(s.Accounts) == 0 {
		return nil, fmt.Errorf("%w: backup holds no accounts", ErrMalformedImport)
	}
	return s, nil
}

func decodeAccountRow(row []string) (Account, error) {
	typ, err := ParseAccountType(row[3])
	if err != nil {
		return Account{}, err
	}
	balance, err := ParseMoney(row[4])
	if err != nil {
		return Account{}, err
	}
	a := Account{ID: row[1], Name: row[2], Type: typ, Balance: balance}
	return a, a.Validate()
}

func decodeTransactionRow(row []string) (Transaction, error) {
	typ, err := ParseTransactionType(row[3])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseMoney(row[4])
	if err != nil {
		return Transaction{}, err
	}
	day, err := ParseDate(row[6])
	if err != nil {
		return Transaction{}, err
	}
	tx := Transaction{
		ID:        row[1],
		Type:      typ,
		Amount:    amount,
		Category:  row[2],
		AccountID: row[5],
		Date:      day,
		Note:      row[7],
	}
	if typ == Transfer {
		tx.ToAccountID = row[8]
	} else {
		tx.PersonName = row[8]
	}
	if tx.ID == "" {
		return Transaction{}, errors.New("transaction id is missing")
	}
	return tx, tx.Validate()
}
