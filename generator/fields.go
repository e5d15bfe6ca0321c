package generator

import (
	"crypto/rand"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/n0rdy/mockdata/refdata"
)

const (
	DateLayout       = "2006-01-02"
	ExpirationLayout = "01/2006"

	maxRandomStringLength = 50
)

type StringKind string

const (
	LetterString StringKind = "letter"
	NumberString StringKind = "number"
	MixedString  StringKind = "mixed"
)

var (
	letters        = strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")
	topLevelDomain = []string{".com", ".net", ".us", ".biz"}
	freeMailHosts  = []string{"gmail.com", "yahoo.com", "me.com", "msn.com", "hotmail.com"}
	urlSchemes     = []string{"https://www.", "http://www.", "http://", "https://"}
	tollFreeCodes  = []string{"800", "888", "877", "866", "855"}
	companySuffix  = []string{
		"Corporation", "Company", "Company, Limited", "Computer Repair", "Incorporated",
		"and Sons", "Group", "Group, PLC", "Furniture", "Flowers", "Sales", "Systems",
		"Tire", "Auto", "Plumbing", "Roofing", "Realty", "Foods", "Books",
	}

	nonAlphanumeric = regexp.MustCompile(`[^0-9a-zA-Z]`)
	illegalInEmail  = regexp.MustCompile(`[^0-9a-zA-Z_.]`)
)

// UniqueHash is 40 hex chars of sha1 over fresh crypto/rand bytes. It never
// follows the seeded source.
func (g *Generator) UniqueHash() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing leaves the seeded source as the only entropy
		for i := range b {
			b[i] = byte(g.rnd.IntN(256))
		}
	}
	sum := sha1.Sum(b)
	return hex.EncodeToString(sum[:])
}

// GUID formats random bits as xxxxxxxx-xxxx-xxx4-xxxx-xxxxxxxxxxxx, where the
// second digit of the fourth group is one of 1, 5, 9 or d.
func (g *Generator) GUID() string {
	clockSeq := g.rnd.IntN(0x10000)&^0x0300 | 0x0100
	return fmt.Sprintf("%04x%04x-%04x-%03x4-%04x-%04x%04x%04x",
		g.rnd.IntN(0x10000), g.rnd.IntN(0x10000),
		g.rnd.IntN(0x10000),
		g.rnd.IntN(0x1000),
		clockSeq,
		g.rnd.IntN(0x10000), g.rnd.IntN(0x10000), g.rnd.IntN(0x10000),
	)
}

func (g *Generator) Letter() string {
	l, _ := ChooseUniform(g.rnd, letters)
	return l
}

// String builds a random string of the given kind. A non-positive length draws
// one from [1, 50]; unknown kinds are treated as mixed.
func (g *Generator) String(kind StringKind, length int) string {
	if length <= 0 {
		length = g.rnd.Int(1, maxRandomStringLength)
	}

	var sb strings.Builder
	for sb.Len() < length {
		switch kind {
		case LetterString:
			sb.WriteString(g.Letter())
		case NumberString:
			sb.WriteString(strconv.Itoa(g.rnd.Int(1, 10)))
		default:
			sb.WriteString(g.UniqueHash())
		}
	}
	return sb.String()[:length]
}

// DateParams bounds Date and BirthDate. Zero fields take the defaults.
type DateParams struct {
	MinYear  int
	MaxYear  int
	MinMonth int
	MaxMonth int
}

// Date picks a year, then a month, then a day that exists in that month.
// Defaults are the last two years and every month.
func (g *Generator) Date(params DateParams, layout string) string {
	year := g.now().Year()
	if params.MinYear == 0 {
		params.MinYear = year - 2
	}
	if params.MaxYear == 0 {
		params.MaxYear = year
	}
	return g.date(params, layout)
}

// BirthDate is Date with a default age between 20 and 80 years.
func (g *Generator) BirthDate(params DateParams, layout string) string {
	year := g.now().Year()
	if params.MinYear == 0 {
		params.MinYear = year - 80
	}
	if params.MaxYear == 0 {
		params.MaxYear = year - 20
	}
	return g.date(params, layout)
}

// Expiration is a date in the current year or up to three years ahead.
func (g *Generator) Expiration(layout string) string {
	if layout == "" {
		layout = ExpirationLayout
	}
	year := g.now().Year()
	return g.date(DateParams{MinYear: year, MaxYear: year + 3}, layout)
}

func (g *Generator) date(params DateParams, layout string) string {
	if layout == "" {
		layout = DateLayout
	}
	minMonth := clampMonth(params.MinMonth, 1)
	maxMonth := clampMonth(params.MaxMonth, 12)

	year := g.rnd.Int(params.MinYear, params.MaxYear)
	month := time.Month(g.rnd.Int(minMonth, maxMonth))
	// day 0 of the next month is the last day of this one
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	day := g.rnd.Int(1, daysInMonth)

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Format(layout)
}

func clampMonth(month int, fallback int) int {
	if month < 1 || month > 12 {
		return fallback
	}
	return month
}

// Phone formats AAA-PPP-LLLL with an area code valid for the zip, or for a
// random zip of the state when no zip is given.
func (g *Generator) Phone(stateCode string, zip string, includeTollFree bool) (string, error) {
	var zr refdata.ZipRecord
	var err error
	if zip != "" {
		zr, err = g.store.RandomZip(refdata.ZipFilter{Zip: zip})
	} else {
		if stateCode == "" {
			st, stErr := g.State("")
			if stErr != nil {
				return "", stErr
			}
			stateCode = st.Code
		}
		zr, err = g.store.RandomZip(refdata.ZipFilter{StateCode: stateCode})
	}
	if err != nil {
		return "", lookupFailure("area codes for zip "+zip+" state "+stateCode, err)
	}

	codes := zr.AreaCodeList()
	if includeTollFree {
		codes = append(codes, tollFreeCodes...)
	}
	areaCode, ok := ChooseUniform(g.rnd, codes)
	if !ok {
		return "", lookupFailure("area codes for zip "+zr.Zip, refdata.ErrNotFound)
	}

	return fmt.Sprintf("%s-%d-%04d", areaCode, g.rnd.Int(100, 999), g.rnd.Int(1, 9999)), nil
}

// Domain lower-cases base, strips everything but letters and digits and adds
// a TLD. An empty base uses a fresh last name.
func (g *Generator) Domain(base string) (string, error) {
	if base == "" {
		last, err := g.LastName(0)
		if err != nil {
			return "", err
		}
		base = last
	}

	tld, _ := ChooseUniform(g.rnd, topLevelDomain)
	return strings.ToLower(nonAlphanumeric.ReplaceAllString(base, "")) + tld, nil
}

// Username derives a lower-cased login from name. A nil name uses a fresh one.
func (g *Generator) Username(name *FullName) (string, error) {
	if name == nil {
		fn, err := g.FullName("")
		if err != nil {
			return "", err
		}
		name = &fn
	}

	initial := ""
	if name.First != "" {
		initial = name.First[:1]
	}
	candidates := []string{
		name.First,
		name.Last,
		name.First + "." + name.Last,
		name.First + name.Last,
		initial + name.Last,
	}
	username, _ := ChooseUniform(g.rnd, candidates)
	return strings.ToLower(username), nil
}

// Email joins a username for name with either domain or a free mail host.
func (g *Generator) Email(name *FullName, domain string) (string, error) {
	username, err := g.Username(name)
	if err != nil {
		return "", err
	}

	if domain == "" {
		domain, err = g.Domain("")
		if err != nil {
			return "", err
		}
	}
	host, _ := ChooseUniform(g.rnd, append([]string{domain}, freeMailHosts...))

	return illegalInEmail.ReplaceAllString(username, "") + "@" + host, nil
}

func (g *Generator) URL(domain string) (string, error) {
	if domain == "" {
		var err error
		domain, err = g.Domain("")
		if err != nil {
			return "", err
		}
	}
	scheme, _ := ChooseUniform(g.rnd, urlSchemes)
	return scheme + domain, nil
}

func (g *Generator) IP() string {
	return fmt.Sprintf("%d.%d.%d.%d", g.rnd.Int(0, 255), g.rnd.Int(0, 255), g.rnd.Int(0, 255), g.rnd.Int(0, 255))
}

// CompanyName appends a corporate suffix to base, or to a fresh last name.
func (g *Generator) CompanyName(base string) (string, error) {
	if base == "" {
		last, err := g.LastName(0)
		if err != nil {
			return "", err
		}
		base = last
	}
	suffix, _ := ChooseUniform(g.rnd, companySuffix)
	return base + " " + suffix, nil
}

func (g *Generator) Gender() refdata.Gender {
	gender, _ := ChooseUniform(g.rnd, refdata.Genders())
	return gender
}

// FirstName draws a name of the given gender, or of a random one when empty.
// A non-positive maxRank uses the configured ceiling.
func (g *Generator) FirstName(gender refdata.Gender, maxRank int) (string, error) {
	if gender == "" {
		gender = g.Gender()
	}
	if maxRank <= 0 {
		maxRank = g.firstNameMaxRank
	}

	name, err := g.store.RandomFirstName(gender, maxRank)
	if err != nil {
		return "", lookupFailure("first name for gender "+string(gender), err)
	}
	return name, nil
}

// MiddleName is another first name of the same gender.
func (g *Generator) MiddleName(gender refdata.Gender) (string, error) {
	return g.FirstName(gender, 0)
}

func (g *Generator) LastName(maxRank int) (string, error) {
	if maxRank <= 0 {
		maxRank = g.lastNameMaxRank
	}

	name, err := g.store.RandomLastName(maxRank)
	if err != nil {
		return "", lookupFailure("last name", err)
	}
	return name, nil
}

func (g *Generator) City(stateCode string) (string, error) {
	zr, err := g.zipRecord(stateCode, "")
	if err != nil {
		return "", err
	}
	return zr.City, nil
}

func (g *Generator) Zip(stateCode string) (string, error) {
	zr, err := g.zipRecord(stateCode, "")
	if err != nil {
		return "", err
	}
	return zr.Zip, nil
}

func (g *Generator) zipRecord(stateCode string, zip string) (refdata.ZipRecord, error) {
	zr, err := g.store.RandomZip(refdata.ZipFilter{Zip: zip, StateCode: stateCode})
	if err != nil {
		return refdata.ZipRecord{}, lookupFailure(fmt.Sprintf("zip record for zip %q state %q", zip, stateCode), err)
	}
	return zr, nil
}
