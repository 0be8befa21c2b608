package audit

import (
	"context"
	"log/slog"

	"github.com/santantoniari/socidb/internal/normalize"
	"github.com/santantoniari/socidb/internal/storage"
)

// RestyleNames rewrites every stored surname and given name through the
// name normalizer, updating only rows that actually change. Returns the
// number of rewritten persons.
//
// Note: this runs after ingestion, so two files carrying the same person
// with different casing will already have produced two Person rows; the
// pass uniforms style, it does not merge them.
func RestyleNames(ctx context.Context, store storage.Store) (int, error) {
	persons, err := store.ListPersons(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, p := range persons {
		surname := normalize.NormalizeName(p.Surname)
		given := normalize.NormalizeName(p.GivenName)
		if surname == p.Surname && given == p.GivenName {
			continue
		}
		if err := store.UpdatePersonName(ctx, p.ID, surname, given); err != nil {
			return changed, err
		}
		changed++
	}

	slog.Info("Name style normalized", "changed", changed)
	return changed, nil
}
