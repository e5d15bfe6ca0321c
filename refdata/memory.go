package refdata

import (
	"sort"
	"strings"
)

// MemoryStore keeps every table in memory. It is never written after
// NewMemoryStore returns, so concurrent reads need no locking.
type MemoryStore struct {
	firstNames map[Gender][]FirstName
	lastNames  []LastName
	streets    []string
	zipcodes   []ZipRecord
	byState    map[string][]int
	byZip      map[string][]int
	picker     Picker
}

func NewMemoryStore(ds Dataset, opts ...Option) *MemoryStore {
	conf := newStoreConfig(opts)

	ms := &MemoryStore{
		firstNames: make(map[Gender][]FirstName),
		lastNames:  make([]LastName, len(ds.LastNames)),
		streets:    make([]string, 0, len(ds.Streets)),
		zipcodes:   make([]ZipRecord, len(ds.Zipcodes)),
		byState:    make(map[string][]int),
		byZip:      make(map[string][]int),
		picker:     conf.picker,
	}

	for _, fn := range ds.FirstNames {
		ms.firstNames[fn.Gender] = append(ms.firstNames[fn.Gender], fn)
	}
	for gender := range ms.firstNames {
		names := ms.firstNames[gender]
		sort.SliceStable(names, func(i, j int) bool {
			return names[i].Rank < names[j].Rank
		})
	}

	copy(ms.lastNames, ds.LastNames)
	sort.SliceStable(ms.lastNames, func(i, j int) bool {
		return ms.lastNames[i].Rank < ms.lastNames[j].Rank
	})

	for _, street := range ds.Streets {
		ms.streets = append(ms.streets, street.Name)
	}

	copy(ms.zipcodes, ds.Zipcodes)
	for i, zr := range ms.zipcodes {
		stateKey := normalizeStateCode(zr.StateCode)
		ms.byState[stateKey] = append(ms.byState[stateKey], i)
		ms.byZip[zr.Zip] = append(ms.byZip[zr.Zip], i)
	}

	return ms
}

func (ms *MemoryStore) RandomFirstName(gender Gender, maxRank int) (string, error) {
	if !gender.Valid() {
		return "", ErrInvalidGender
	}

	names := ms.firstNames[gender]
	// names are rank ordered, so the matching set is a prefix
	n := sort.Search(len(names), func(i int) bool {
		return !withinRank(names[i].Rank, maxRank)
	})

	fn, err := pick(ms.picker, names[:n])
	if err != nil {
		return "", err
	}
	return fn.Name, nil
}

func (ms *MemoryStore) RandomLastName(maxRank int) (string, error) {
	n := sort.Search(len(ms.lastNames), func(i int) bool {
		return !withinRank(ms.lastNames[i].Rank, maxRank)
	})

	ln, err := pick(ms.picker, ms.lastNames[:n])
	if err != nil {
		return "", err
	}
	return ln.Name, nil
}

func (ms *MemoryStore) RandomStreetName() (string, error) {
	return pick(ms.picker, ms.streets)
}

func (ms *MemoryStore) RandomZip(filter ZipFilter) (ZipRecord, error) {
	var candidates []int

	stateCode := normalizeStateCode(filter.StateCode)
	switch {
	case filter.Zip != "" && stateCode != "":
		for _, i := range ms.byZip[filter.Zip] {
			if normalizeStateCode(ms.zipcodes[i].StateCode) == stateCode {
				candidates = append(candidates, i)
			}
		}
	case filter.Zip != "":
		candidates = ms.byZip[filter.Zip]
	case stateCode != "":
		candidates = ms.byState[stateCode]
	default:
		if len(ms.zipcodes) == 0 {
			return ZipRecord{}, ErrNotFound
		}
		return ms.zipcodes[ms.picker.IntN(len(ms.zipcodes))], nil
	}

	i, err := pick(ms.picker, candidates)
	if err != nil {
		return ZipRecord{}, err
	}
	return ms.zipcodes[i], nil
}

func (ms *MemoryStore) Counts() Counts {
	firstNames := 0
	for _, names := range ms.firstNames {
		firstNames += len(names)
	}
	return Counts{
		FirstNames: firstNames,
		LastNames:  len(ms.lastNames),
		Streets:    len(ms.streets),
		Zipcodes:   len(ms.zipcodes),
	}
}

func (ms *MemoryStore) Close() error {
	return nil
}

func normalizeStateCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
