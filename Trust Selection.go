/*
File Name:  Trust Selection.go
Copyright:  2026 Vicinet s.r.o.
Author:     Vicinet developers

Selection of the neighbor best suited to receive critical data. The caller
provides competence tiers in priority order; the first tier that matches at
least one neighbor wins, no matter what trust values later tiers would offer.
Trust only ranks neighbors within a tier.
*/

package core

// SelectByTiers returns the address of the most trusted neighbor within the
// highest-priority competence tier that matches at least one neighbor.
// Within a tier, a neighbor only replaces the current best on a strictly
// greater trust value, so equal-trust ties go to the earliest registered.
//
// Returns ErrEmptyTable if no neighbor is registered at all, and ErrNoMatch
// if no tier matches any neighbor.
func (table *NeighborTable) SelectByTiers(tiers []string) (ip Address, err error) {
	table.RLock()
	defer table.RUnlock()

	if len(table.records) == 0 {
		return "", ErrEmptyTable
	}

	for _, tier := range tiers {
		var best *NeighborRecord

		for _, candidate := range table.order {
			record := table.records[candidate]
			if record.Competence != tier {
				continue
			}
			if best == nil || record.Trust > best.Trust {
				best = record
			}
		}

		if best != nil {
			return best.Address, nil
		}
	}

	return "", ErrNoMatch
}
