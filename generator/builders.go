package generator

import (
	"strconv"
	"strings"

	"github.com/n0rdy/mockdata/refdata"
)

const (
	DefaultLicenseMin = 900000001
	DefaultLicenseMax = 999999999

	minAccountNumber = 1000
	maxAccountNumber = 999999999
)

var (
	apartmentTypes = []string{"Apt.", "Apartment", "Ste.", "Suite", "Box"}
	accountTypes   = []string{"Checking", "Savings"}
	bankNames      = []string{"First National", "Arvest", "Regions", "Metropolitan", "Wells Fargo"}

	weightedCardTypes = []Weighted[NumberType]{
		{Item: AmericanExpress, Weight: 1},
		{Item: Discover, Weight: 2},
		{Item: MasterCard, Weight: 10},
		{Item: Visa, Weight: 10},
	}
)

// FullName draws first and middle names of one gender and an unrelated last
// name. An empty gender is chosen at random.
func (g *Generator) FullName(gender refdata.Gender) (FullName, error) {
	if gender == "" {
		gender = g.Gender()
	}

	first, err := g.FirstName(gender, 0)
	if err != nil {
		return FullName{}, err
	}
	middle, err := g.MiddleName(gender)
	if err != nil {
		return FullName{}, err
	}
	last, err := g.LastName(0)
	if err != nil {
		return FullName{}, err
	}

	return FullName{First: first, Middle: middle, Last: last, Gender: gender}, nil
}

// Street is a house number in [100, 9999] and a street name.
func (g *Generator) Street() (string, error) {
	number := g.rnd.Int(100, 9999)

	name, err := g.store.RandomStreetName()
	if err != nil {
		return "", lookupFailure("street name", err)
	}
	return strconv.Itoa(number) + " " + name, nil
}

// Apartment is a unit label followed by a letter or a number.
func (g *Generator) Apartment() string {
	var extra string
	if g.rnd.Bool() {
		extra = g.Letter()
	} else {
		extra = strconv.Itoa(g.rnd.Int(1, 9999))
	}
	unit, _ := ChooseUniform(g.rnd, apartmentTypes)
	return unit + " " + extra
}

// Address takes city, zip, county and state from one zip record matching
// the given filters; empty filters are not applied.
func (g *Generator) Address(stateCode string, zip string) (Address, error) {
	zr, err := g.zipRecord(stateCode, zip)
	if err != nil {
		return Address{}, err
	}

	line1, err := g.Street()
	if err != nil {
		return Address{}, err
	}

	var line2 *string
	if BoolLikely(g.rnd, true, false, g.secondaryLineLikelihood) {
		apt := g.Apartment()
		line2 = &apt
	}

	return Address{
		Line1:  line1,
		Line2:  line2,
		City:   zr.City,
		Zip:    zr.Zip,
		County: zr.County,
		State:  State{Code: zr.StateCode, Name: zr.State},
	}, nil
}

func (g *Generator) State(stateCode string) (State, error) {
	zr, err := g.zipRecord(stateCode, "")
	if err != nil {
		return State{}, err
	}
	return State{Code: zr.StateCode, Name: zr.State}, nil
}

// Internet builds an online identity. The domain comes from company when set;
// the username and email come from name, or a fresh name when nil.
func (g *Generator) Internet(name *FullName, company string) (Internet, error) {
	if name == nil {
		fn, err := g.FullName("")
		if err != nil {
			return Internet{}, err
		}
		name = &fn
	}

	domain, err := g.Domain(company)
	if err != nil {
		return Internet{}, err
	}
	username, err := g.Username(name)
	if err != nil {
		return Internet{}, err
	}
	email, err := g.Email(name, domain)
	if err != nil {
		return Internet{}, err
	}
	url, err := g.URL(domain)
	if err != nil {
		return Internet{}, err
	}

	return Internet{
		Domain:   domain,
		Username: username,
		Email:    email,
		URL:      url,
		IP:       g.IP(),
	}, nil
}

// CreditCard favours MasterCard and Visa when weighted.
func (g *Generator) CreditCard(weighted bool) CreditCard {
	var cardType NumberType
	if weighted {
		cardType, _ = ChooseWeighted(g.rnd, weightedCardTypes)
	} else {
		cardType, _ = ChooseUniform(g.rnd, CardTypes())
	}

	return CreditCard{
		Type:       cardType,
		Number:     g.BankNumber(cardType),
		Expiration: g.Expiration(""),
	}
}

func (g *Generator) BankAccount() BankAccount {
	accountType, _ := ChooseUniform(g.rnd, accountTypes)
	bank, _ := ChooseUniform(g.rnd, bankNames)

	return BankAccount{
		Type:    accountType,
		Name:    bank,
		Account: strconv.Itoa(g.rnd.Int(minAccountNumber, maxAccountNumber)),
		Routing: g.BankNumber(Routing),
	}
}

// DriverLicense draws a number in [min, max]. Zero bounds take the defaults
// and an empty state is drawn from the store.
func (g *Generator) DriverLicense(stateCode string, min int, max int) (DriverLicense, error) {
	if min == 0 {
		min = DefaultLicenseMin
	}
	if max == 0 {
		max = DefaultLicenseMax
	}

	number := g.rnd.Int(min, max)
	stateCode = strings.ToUpper(strings.TrimSpace(stateCode))
	if stateCode == "" {
		st, err := g.State("")
		if err != nil {
			return DriverLicense{}, err
		}
		stateCode = st.Code
	}

	return DriverLicense{
		Number:     number,
		State:      stateCode,
		Expiration: g.Expiration(""),
	}, nil
}
