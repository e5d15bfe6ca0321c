package generator

import "strings"

// Person composes every builder around one state. Later steps reuse what
// earlier ones produced: the second address and all phones share the first
// address's zip, and the internet identity is derived from the name and company.
func (g *Generator) Person(stateCode string) (Person, error) {
	stateCode = strings.ToUpper(strings.TrimSpace(stateCode))
	if stateCode == "" {
		st, err := g.State("")
		if err != nil {
			return Person{}, err
		}
		stateCode = st.Code
	}

	p := Person{
		GUID:       g.GUID(),
		UniqueHash: g.UniqueHash(),
	}

	var err error
	if p.Name, err = g.FullName(""); err != nil {
		return Person{}, err
	}

	companyBase := BoolLikely(g.rnd, p.Name.Last, "", g.selfEmployedLikelihood)
	if p.Company, err = g.CompanyName(companyBase); err != nil {
		return Person{}, err
	}

	if p.Address, err = g.Address(stateCode, ""); err != nil {
		return Person{}, err
	}
	if p.Address2, err = g.Address(stateCode, p.Address.Zip); err != nil {
		return Person{}, err
	}

	if p.Internet, err = g.Internet(&p.Name, p.Company); err != nil {
		return Person{}, err
	}

	phones := make([]string, 3)
	for i := range phones {
		if phones[i], err = g.Phone(stateCode, p.Address.Zip, false); err != nil {
			return Person{}, err
		}
	}
	p.Phone = Phone{Home: phones[0], Mobile: phones[1], Work: phones[2]}

	if p.SSN, err = g.SSN(stateCode); err != nil {
		return Person{}, err
	}
	if p.DLN, err = g.DriverLicense(stateCode, 0, 0); err != nil {
		return Person{}, err
	}
	p.DOB = g.BirthDate(DateParams{}, DateLayout)

	p.CreditCard = g.CreditCard(true)
	p.BankAccount = g.BankAccount()

	return p, nil
}
