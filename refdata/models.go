package refdata

import "strings"

type Gender string

const (
	Female Gender = "F"
	Male   Gender = "M"
)

// Genders lists every gender the name tables are keyed by.
func Genders() []Gender {
	return []Gender{Female, Male}
}

func (g Gender) Valid() bool {
	return g == Female || g == Male
}

type FirstName struct {
	Name   string
	Rank   int
	Gender Gender
}

type LastName struct {
	Name string
	Rank int
}

type Street struct {
	Name string
}

type StateAbbreviation struct {
	Name string
	Code string
}

// ZipRecord is one row of the zip code table. City, county and state are only
// ever read together from a single record.
type ZipRecord struct {
	Zip                 string
	Type                string
	City                string
	AcceptableCities    string
	UnacceptableCities  string
	StateCode           string
	State               string
	County              string
	Timezone            string
	AreaCodes           string
	Latitude            string
	Longitude           string
	WorldRegion         string
	Country             string
	Decommissioned      string
	EstimatedPopulation string
	Notes               string
}

// AreaCodeList splits the comma-separated area codes column, dropping blanks.
func (zr ZipRecord) AreaCodeList() []string {
	res := make([]string, 0)
	for _, code := range strings.Split(zr.AreaCodes, ",") {
		code = strings.TrimSpace(code)
		if code != "" {
			res = append(res, code)
		}
	}
	return res
}

// ZipFilter narrows RandomZip. Empty fields are not applied.
type ZipFilter struct {
	Zip       string
	StateCode string
}

// Dataset is the full set of reference tables, as produced by the loader.
type Dataset struct {
	FirstNames []FirstName
	LastNames  []LastName
	Streets    []Street
	Zipcodes   []ZipRecord
}

type Counts struct {
	FirstNames int `json:"first_names" yaml:"first_names" xml:"first_names"`
	LastNames  int `json:"last_names" yaml:"last_names" xml:"last_names"`
	Streets    int `json:"streets" yaml:"streets" xml:"streets"`
	Zipcodes   int `json:"zipcodes" yaml:"zipcodes" xml:"zipcodes"`
}

func (ds Dataset) Counts() Counts {
	return Counts{
		FirstNames: len(ds.FirstNames),
		LastNames:  len(ds.LastNames),
		Streets:    len(ds.Streets),
		Zipcodes:   len(ds.Zipcodes),
	}
}
