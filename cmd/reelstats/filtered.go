package main

import (
	"github.com/spf13/cobra"

	"reelstats/internal/catalog"
	"reelstats/internal/filter"
	"reelstats/internal/logging"
)

// filteredRecords loads the catalog and applies the command's criteria.
func (c *commandContext) filteredRecords(cmd *cobra.Command, flags *criteriaFlags) (*catalog.Store, filter.Criteria, []catalog.Record, error) {
	store, err := c.ensureCatalog(cmd.Context())
	if err != nil {
		return nil, filter.Criteria{}, nil, err
	}
	criteria, err := flags.criteria(cmd, store)
	if err != nil {
		return nil, filter.Criteria{}, nil, err
	}
	pred, err := filter.Build(criteria)
	if err != nil {
		return nil, filter.Criteria{}, nil, err
	}
	records := filter.Apply(store.All(), pred)

	if logger, err := c.ensureLogger(); err == nil {
		logging.NewComponentLogger(logger, "cli").Debug("filter applied",
			logging.String(logging.FieldLoadID, store.ID()),
			logging.String("criteria", describeCriteria(criteria)),
			logging.Int("matched", len(records)),
			logging.Int("total", store.Len()),
		)
	}
	return store, criteria, records, nil
}
