// Package ingest implements the row-by-row migration of source tables into
// the store: identity extraction, year-block payment extraction, and
// dedup-on-insert against whatever previous runs already stored.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/santantoniari/socidb/internal/csvsource"
	"github.com/santantoniari/socidb/internal/models"
	"github.com/santantoniari/socidb/internal/normalize"
	"github.com/santantoniari/socidb/internal/storage"
)

// Fixed column convention of the source exports.
const (
	colID         = "n°"
	colName       = "SOCIO"
	colBirthDate  = "DATA"
	colBirthplace = "LUOGO"
	colGroup      = "REFER."
	colNotes      = "NOTE"
)

// SkipReason names why a source row was not ingested. Skips are counted
// and logged, never turned into errors.
type SkipReason string

const (
	SkipMissingID SkipReason = "missing-identifier"
	SkipInvalidID SkipReason = "invalid-identifier"
	SkipEmptyName SkipReason = "empty-name"
)

// ErrSourceFile wraps file-level problems (missing or unreadable source).
// Callers skip the file and continue with the rest of the batch; only
// store failures terminate a run.
var ErrSourceFile = errors.New("source file unavailable")

// FileResult carries the counters for one ingested file. Counters are
// returned values, not shared state, so the engine stays re-entrant.
type FileResult struct {
	// RunID identifies this ingestion pass in log output.
	RunID string
	File  string

	YearBlocks int

	Processed int
	Skipped   int

	PersonsAdded   int
	PersonsMatched int

	PaymentsAdded     int
	PaymentsDuplicate int
	BlocksDropped     int
}

// Ingestor migrates source tables into a storage.Store.
type Ingestor struct {
	store storage.Store
}

// New creates an Ingestor backed by the given store.
func New(store storage.Store) *Ingestor {
	return &Ingestor{store: store}
}

// ProcessFile reads one source file and ingests every row. Row-level
// problems are counted and logged; the returned error is non-nil only for
// file-level problems (wrapped in ErrSourceFile) or store failures.
func (in *Ingestor) ProcessFile(ctx context.Context, path string) (FileResult, error) {
	res := FileResult{
		RunID: uuid.New().String(),
		File:  filepath.Base(path),
	}

	table, err := csvsource.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrSourceFile, err)
	}

	blocks := csvsource.ResolveYearBlocks(table.Headers)
	res.YearBlocks = len(blocks)
	if len(blocks) == 0 {
		slog.Warn("No year columns found in file", "file", res.File, "run_id", res.RunID)
	}

	for i, row := range table.Rows {
		// Header is line 1, so data rows start at line 2.
		ordinal := i + 2
		if err := in.ingestRow(ctx, table, row, ordinal, blocks, &res); err != nil {
			return res, err
		}
	}

	slog.Info("File processed",
		"file", res.File,
		"run_id", res.RunID,
		"processed", res.Processed,
		"skipped", res.Skipped,
		"persons_added", res.PersonsAdded,
		"payments_added", res.PaymentsAdded,
	)
	return res, nil
}

func (in *Ingestor) ingestRow(ctx context.Context, t *csvsource.Table, row []string, ordinal int, blocks []csvsource.YearBlock, res *FileResult) error {
	originalID, skip := parseIdentifier(t.Field(row, colID))
	if skip == "" {
		surname, given := normalize.SplitName(t.Field(row, colName))
		if surname == "" && given == "" {
			skip = SkipEmptyName
		} else {
			return in.ingestValidRow(ctx, t, row, ordinal, originalID, surname, given, blocks, res)
		}
	}

	slog.Warn("Skipping row",
		"file", res.File,
		"row", ordinal,
		"reason", string(skip),
	)
	res.Skipped++
	return nil
}

func (in *Ingestor) ingestValidRow(ctx context.Context, t *csvsource.Table, row []string, ordinal int, originalID int64, surname, given string, blocks []csvsource.YearBlock, res *FileResult) error {
	var notes []string

	birth := normalize.NormalizeDate(t.Field(row, colBirthDate))
	if birth.Kind != normalize.DateValid {
		notes = append(notes, "birth date missing or invalid")
	}
	if n := strings.TrimSpace(t.Field(row, colNotes)); n != "" {
		notes = append(notes, n)
	}

	personID, found, err := in.store.FindPersonID(ctx, surname, given, birth.Stored())
	if err != nil {
		return err
	}
	if found {
		res.PersonsMatched++
		slog.Debug("Person already stored", "surname", surname, "given_name", given, "person_id", personID)
	} else {
		p := &models.Person{
			Surname:    surname,
			GivenName:  given,
			Birthplace: t.Field(row, colBirthplace),
			BirthDate:  birth.Stored(),
			Group:      t.Field(row, colGroup),
			FirstYear:  firstPaidYear(row, blocks),
			Notes:      strings.Join(notes, ", "),
			OriginalID: originalID,
			SourceFile: res.File,
		}
		if err := in.store.InsertPerson(ctx, p); err != nil {
			return err
		}
		personID = p.ID
		res.PersonsAdded++
	}

	for _, b := range blocks {
		if err := in.ingestPayment(ctx, personID, b, row, ordinal, res); err != nil {
			return err
		}
	}

	res.Processed++
	return nil
}

// ingestPayment handles one year block for one row. A blank fee cell means
// no payment that year; a malformed fee cell drops only this block. Either
// way the rest of the row keeps processing.
func (in *Ingestor) ingestPayment(ctx context.Context, personID int64, b csvsource.YearBlock, row []string, ordinal int, res *FileResult) error {
	feeRaw := csvsource.Cell(row, b.FeeCol)
	if strings.TrimSpace(feeRaw) == "" {
		return nil
	}

	amount, err := parseFee(feeRaw)
	if err != nil {
		slog.Debug("Dropping malformed payment cell",
			"file", res.File,
			"row", ordinal,
			"year", b.Year,
			"value", feeRaw,
		)
		res.BlocksDropped++
		return nil
	}

	exists, err := in.store.PaymentExists(ctx, personID, b.Year, amount)
	if err != nil {
		return err
	}
	if exists {
		res.PaymentsDuplicate++
		return nil
	}

	paidOn := normalize.NormalizeDate(csvsource.Cell(row, b.DateCol))
	pay := &models.Payment{
		PersonID: personID,
		Year:     b.Year,
		PaidOn:   paidOn.Stored(),
		Amount:   amount,
		Receipt:  parseCount(csvsource.Cell(row, b.ReceiptCol)),
		Booklet:  parseCount(csvsource.Cell(row, b.BookletCol)),
	}
	if err := in.store.InsertPayment(ctx, pay); err != nil {
		return err
	}
	res.PaymentsAdded++
	return nil
}

// parseIdentifier converts the n° cell to an integer. Some exports carry
// identifiers with a trailing decimal ("12.0"), which truncates. ParseFloat
// also accepts "NaN" and "Inf" text, which some spreadsheet exports emit
// for empty-ish cells; those are not integers and skip the row.
func parseIdentifier(raw string) (int64, SkipReason) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, SkipMissingID
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, ""
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
		return int64(f), ""
	}
	return 0, SkipInvalidID
}

// parseCount converts a receipt or booklet cell, defaulting to 0 when
// blank or unparseable. Non-finite float text counts as unparseable.
func parseCount(raw string) int64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && isFinite(f) {
		return int64(f)
	}
	return 0
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// parseFee converts a fee cell, normalizing comma decimals first.
func parseFee(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."))
}

// firstPaidYear returns the earliest year whose fee cell holds a valid
// amount, for the first-registration year of a newly created person.
// Malformed fee cells do not count: their block records no payment.
func firstPaidYear(row []string, blocks []csvsource.YearBlock) *int {
	var first *int
	for _, b := range blocks {
		fee := csvsource.Cell(row, b.FeeCol)
		if strings.TrimSpace(fee) == "" {
			continue
		}
		if _, err := parseFee(fee); err != nil {
			continue
		}
		if first == nil || b.Year < *first {
			year := b.Year
			first = &year
		}
	}
	return first
}
