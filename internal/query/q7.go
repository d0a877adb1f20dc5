package query

import (
	"sort"
	"strconv"

	"github.com/MarkoPoloResearchLab/voyagedb/internal/model"
	"github.com/MarkoPoloResearchLab/voyagedb/internal/types"
)

// Q7: the N origin airports with the highest median departure delay, in
// seconds. Early departures count as zero delay; an even sample takes the
// truncated mean of the two middle values.

type q7Args struct {
	limit int
}

func parseQ7(args []string) (any, error) {
	if len(args) != 1 {
		return nil, errBadArgs
	}
	limit, err := strconv.Atoi(args[0])
	if err != nil || limit < 1 {
		return nil, errBadArgs
	}
	return q7Args{limit: limit}, nil
}

type q7Entry struct {
	code   types.AirportCode
	median int64
}

func execQ7(env *Env, _ any, inst *Instance, w *Writer) error {
	a := inst.Args.(q7Args)
	delays := make(map[types.AirportCode][]int64)
	env.DB.Flights.ForEach(func(flight *model.Flight) bool {
		delay := flight.Delay()
		if delay < 0 {
			delay = 0
		}
		delays[flight.Origin] = append(delays[flight.Origin], delay)
		return true
	})
	entries := make([]q7Entry, 0, len(delays))
	for code, sample := range delays {
		entries = append(entries, q7Entry{code: code, median: median(sample)})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].median != entries[j].median {
			return entries[i].median > entries[j].median
		}
		return entries[i].code < entries[j].code
	})
	if len(entries) > a.limit {
		entries = entries[:a.limit]
	}
	for _, entry := range entries {
		w.BeginObject()
		w.Field("name", entry.code.String())
		w.Field("median", strconv.FormatInt(entry.median, 10))
	}
	return nil
}

func median(sample []int64) int64 {
	sort.Slice(sample, func(i, j int) bool { return sample[i] < sample[j] })
	mid := len(sample) / 2
	if len(sample)%2 == 1 {
		return sample[mid]
	}
	return (sample[mid-1] + sample[mid]) / 2
}
