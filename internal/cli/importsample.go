package cli

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/recordkeeper/internal/auth"
	"github.com/dmitrijs2005/recordkeeper/internal/common"
	"github.com/dmitrijs2005/recordkeeper/internal/customers"
	"github.com/dmitrijs2005/recordkeeper/internal/sampledata"
)

// pickType decides the customer type assigned to an imported candidate.
// A test seam; the default is a coin flip.
var pickType = func() customers.CustomerType {
	if rand.IntN(2) == 1 {
		return customers.TypeVIP
	}
	return customers.TypeRegular
}

// toBatch turns raw candidates into customer records: the engine assigns
// each one a type and a creation timestamp. Candidate ids are kept as-is;
// the import replaces the whole collection, so they cannot collide.
func toBatch(candidates []sampledata.Candidate, now time.Time) []customers.Customer {
	batch := make([]customers.Customer, 0, len(candidates))
	for _, cand := range candidates {
		batch = append(batch, customers.Customer{
			ID:           cand.ID,
			Name:         cand.Name,
			Email:        cand.Email,
			Phone:        cand.Phone,
			Address:      cand.Address,
			CustomerType: pickType(),
			CreatedAt:    now,
		})
	}
	return batch
}

// ImportSample fetches candidate records from the sample source and
// replaces the customer collection with them. The fetch runs on its own
// goroutine under a deadline so a slow network cannot wedge the REPL; the
// store mutation happens here, on the caller's side, once the result is in.
func (a *App) ImportSample(ctx context.Context) error {
	if !auth.Allowed(a.session, auth.ActionImportRecords) {
		fmt.Fprintln(a.out, "Permission denied: only admins may import")
		return common.ErrorNotAuthenticated
	}

	ok, err := GetConfirmation(a.reader, "Importing replaces ALL existing customers. Continue?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	type result struct {
		candidates []sampledata.Candidate
		err        error
	}

	fetchCtx, cancel := context.WithTimeout(ctx, a.config.SampleFetchTimeout)
	defer cancel()

	ch := make(chan result, 1)
	go func() {
		candidates, err := a.samples.Fetch(fetchCtx)
		ch <- result{candidates: candidates, err: err}
	}()

	fmt.Fprintln(a.out, "Fetching sample data...")
	res := <-ch

	if res.err != nil || len(res.candidates) == 0 {
		fmt.Fprintln(a.out, outcomeMessage(common.ErrorExternalSource))
		return res.err
	}

	if err := a.customers.ImportBatch(ctx, toBatch(res.candidates, time.Now())); err != nil {
		fmt.Fprintln(a.out, outcomeMessage(err))
		return err
	}

	fmt.Fprintf(a.out, "Imported %d customers\n", len(res.candidates))
	return nil
}
