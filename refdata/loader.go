package refdata

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultLoadLimit = 500

const (
	FemaleFirstNamesFile   = "female_firstnames.txt"
	MaleFirstNamesFile     = "male_firstnames.txt"
	LastNamesFile          = "lastnames.txt"
	StreetsFile            = "streets.txt"
	StateAbbreviationsFile = "state_abbreviations.txt"
	ZipCodesFile           = "zip_code_database.csv"
)

// census name file layout
const (
	nameWidth        = 14
	freqWidth        = 7
	cumulativeWidth  = 7
	rankWidth        = 6
	stateNameWidth   = 32
	stateCodeWidth   = 2
	zipColumnsNumber = 16
)

var (
	ErrMalformedLine = errors.New("refdata: malformed reference line")

	skippedTerritories = map[string]bool{"GU": true, "PR": true, "VI": true}
)

// NameLine is one row of a census name frequency file.
type NameLine struct {
	Name                string
	Frequency           string
	CumulativeFrequency string
	Rank                int
}

// ParseNameLine slices a fixed-width census line into name:14, freq:7,
// cumulative:7 and rank:6 columns. Short lines are padded before slicing.
func ParseNameLine(line string) (NameLine, error) {
	cols := sliceColumns(line, nameWidth, freqWidth, cumulativeWidth, rankWidth)

	if cols[0] == "" {
		return NameLine{}, fmt.Errorf("%w: empty name column", ErrMalformedLine)
	}
	rank, err := strconv.Atoi(cols[3])
	if err != nil {
		return NameLine{}, fmt.Errorf("%w: rank %q is not a number", ErrMalformedLine, cols[3])
	}

	return NameLine{
		Name:                cols[0],
		Frequency:           cols[1],
		CumulativeFrequency: cols[2],
		Rank:                rank,
	}, nil
}

// ParseStateLine slices a fixed-width name:32, code:2 line.
func ParseStateLine(line string) (StateAbbreviation, error) {
	cols := sliceColumns(line, stateNameWidth, stateCodeWidth)
	if cols[0] == "" || len(cols[1]) != stateCodeWidth {
		return StateAbbreviation{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	return StateAbbreviation{Name: cols[0], Code: strings.ToUpper(cols[1])}, nil
}

func sliceColumns(line string, widths ...int) []string {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(line) < total {
		line += strings.Repeat(" ", total-len(line))
	}

	cols := make([]string, len(widths))
	offset := 0
	for i, w := range widths {
		cols[i] = strings.TrimSpace(line[offset : offset+w])
		offset += w
	}
	return cols
}

// ReadFirstNames reads at most limit names of the given gender.
// A limit <= 0 reads the whole file.
func ReadFirstNames(r io.Reader, gender Gender, limit int) ([]FirstName, error) {
	if !gender.Valid() {
		return nil, ErrInvalidGender
	}

	res := make([]FirstName, 0)
	err := readNameLines(r, limit, func(nl NameLine) {
		res = append(res, FirstName{Name: nl.Name, Rank: nl.Rank, Gender: gender})
	})
	return res, err
}

func ReadLastNames(r io.Reader, limit int) ([]LastName, error) {
	res := make([]LastName, 0)
	err := readNameLines(r, limit, func(nl NameLine) {
		res = append(res, LastName{Name: nl.Name, Rank: nl.Rank})
	})
	return res, err
}

func readNameLines(r io.Reader, limit int, add func(NameLine)) error {
	caser := cases.Title(language.English)

	scanner := bufio.NewScanner(r)
	lineNo, count := 0, 0
	for scanner.Scan() {
		lineNo++
		if limit > 0 && count >= limit {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		nl, err := ParseNameLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		nl.Name = caser.String(nl.Name)

		add(nl)
		count++
	}
	return scanner.Err()
}

func ReadStreets(r io.Reader) ([]Street, error) {
	res := make([]Street, 0)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name != "" {
			res = append(res, Street{Name: name})
		}
	}
	return res, scanner.Err()
}

// ReadStateAbbreviations returns state names keyed by their 2-letter code.
func ReadStateAbbreviations(r io.Reader) (map[string]string, error) {
	caser := cases.Title(language.English)
	res := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		sa, err := ParseStateLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		res[sa.Code] = caser.String(sa.Name)
	}
	return res, scanner.Err()
}

// ReadZipCodes reads the zip code CSV, keeping only STANDARD rows outside the
// GU, PR and VI territories. states resolves a state code to its name; a code
// missing from it is used as the name.
func ReadZipCodes(r io.Reader, states map[string]string) ([]ZipRecord, error) {
	caser := cases.Title(language.English, cases.NoLower)

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	res := make([]ZipRecord, 0)
	header := true
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			if len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "zip") {
				continue
			}
		}
		if len(row) < zipColumnsNumber {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w: expected %d columns, got %d", line, ErrMalformedLine, zipColumnsNumber, len(row))
		}

		zr := ZipRecord{
			Zip:                 strings.TrimSpace(row[0]),
			Type:                strings.TrimSpace(row[1]),
			City:                caser.String(strings.TrimSpace(row[2])),
			AcceptableCities:    row[3],
			UnacceptableCities:  row[4],
			StateCode:           strings.ToUpper(strings.TrimSpace(row[5])),
			County:              strings.TrimSpace(strings.ReplaceAll(row[6], " County", "")),
			Timezone:            row[7],
			AreaCodes:           row[8],
			Latitude:            row[9],
			Longitude:           row[10],
			WorldRegion:         row[11],
			Country:             row[12],
			Decommissioned:      row[13],
			EstimatedPopulation: row[14],
			Notes:               row[15],
		}
		if zr.Type != "STANDARD" || skippedTerritories[zr.StateCode] {
			continue
		}

		zr.State = zr.StateCode
		if name, ok := states[zr.StateCode]; ok {
			zr.State = name
		}
		res = append(res, zr)
	}
	return res, nil
}

// LoadDataset reads the six reference files from the root of fsys.
func LoadDataset(fsys fs.FS, limit int) (Dataset, error) {
	var ds Dataset

	for _, g := range []struct {
		file   string
		gender Gender
	}{
		{FemaleFirstNamesFile, Female},
		{MaleFirstNamesFile, Male},
	} {
		names, err := readFile(fsys, g.file, func(r io.Reader) ([]FirstName, error) {
			return ReadFirstNames(r, g.gender, limit)
		})
		if err != nil {
			return Dataset{}, err
		}
		ds.FirstNames = append(ds.FirstNames, names...)
	}

	lastNames, err := readFile(fsys, LastNamesFile, func(r io.Reader) ([]LastName, error) {
		return ReadLastNames(r, limit)
	})
	if err != nil {
		return Dataset{}, err
	}
	ds.LastNames = lastNames

	streets, err := readFile(fsys, StreetsFile, ReadStreets)
	if err != nil {
		return Dataset{}, err
	}
	ds.Streets = streets

	states, err := readFile(fsys, StateAbbreviationsFile, ReadStateAbbreviations)
	if err != nil {
		return Dataset{}, err
	}

	zipcodes, err := readFile(fsys, ZipCodesFile, func(r io.Reader) ([]ZipRecord, error) {
		return ReadZipCodes(r, states)
	})
	if err != nil {
		return Dataset{}, err
	}
	ds.Zipcodes = zipcodes

	return ds, nil
}

func readFile[T any](fsys fs.FS, name string, read func(io.Reader) (T, error)) (T, error) {
	var zero T

	f, err := fsys.Open(name)
	if err != nil {
		return zero, fmt.Errorf("opening %s: %w", name, err)
	}
	defer f.Close()

	res, err := read(f)
	if err != nil {
		return zero, fmt.Errorf("reading %s: %w", name, err)
	}
	return res, nil
}
