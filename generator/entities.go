package generator

import "github.com/n0rdy/mockdata/refdata"

type FullName struct {
	First  string         `json:"first" yaml:"first" xml:"first"`
	Middle string         `json:"middle" yaml:"middle" xml:"middle"`
	Last   string         `json:"last" yaml:"last" xml:"last"`
	Gender refdata.Gender `json:"gender" yaml:"gender" xml:"gender"`
}

type State struct {
	Code string `json:"code" yaml:"code" xml:"code"`
	Name string `json:"name" yaml:"name" xml:"name"`
}

type Address struct {
	Line1 string `json:"line_1" yaml:"line_1" xml:"line_1"`
	// Line2 is nil when the address has no secondary line.
	Line2  *string `json:"line_2" yaml:"line_2" xml:"line_2,omitempty"`
	City   string  `json:"city" yaml:"city" xml:"city"`
	Zip    string  `json:"zip" yaml:"zip" xml:"zip"`
	County string  `json:"county" yaml:"county" xml:"county"`
	State  State   `json:"state" yaml:"state" xml:"state"`
}

type Internet struct {
	Domain   string `json:"domain" yaml:"domain" xml:"domain"`
	Username string `json:"username" yaml:"username" xml:"username"`
	Email    string `json:"email" yaml:"email" xml:"email"`
	URL      string `json:"url" yaml:"url" xml:"url"`
	IP       string `json:"ip" yaml:"ip" xml:"ip"`
}

type CreditCard struct {
	Type       NumberType `json:"type" yaml:"type" xml:"type"`
	Number     string     `json:"number" yaml:"number" xml:"number"`
	Expiration string     `json:"expiration" yaml:"expiration" xml:"expiration"`
}

type BankAccount struct {
	Type    string `json:"type" yaml:"type" xml:"type"`
	Name    string `json:"name" yaml:"name" xml:"name"`
	Account string `json:"account" yaml:"account" xml:"account"`
	Routing string `json:"routing" yaml:"routing" xml:"routing"`
}

type DriverLicense struct {
	Number     int    `json:"number" yaml:"number" xml:"number"`
	State      string `json:"state" yaml:"state" xml:"state"`
	Expiration string `json:"expiration" yaml:"expiration" xml:"expiration"`
}

type Phone struct {
	Home   string `json:"home" yaml:"home" xml:"home"`
	Mobile string `json:"mobile" yaml:"mobile" xml:"mobile"`
	Work   string `json:"work" yaml:"work" xml:"work"`
}

type Person struct {
	GUID        string        `json:"guid" yaml:"guid" xml:"guid"`
	UniqueHash  string        `json:"unique_hash" yaml:"unique_hash" xml:"unique_hash"`
	Name        FullName      `json:"name" yaml:"name" xml:"name"`
	Company     string        `json:"company" yaml:"company" xml:"company"`
	Address     Address       `json:"address" yaml:"address" xml:"address"`
	Address2    Address       `json:"address2" yaml:"address2" xml:"address2"`
	Internet    Internet      `json:"internet" yaml:"internet" xml:"internet"`
	Phone       Phone         `json:"phone" yaml:"phone" xml:"phone"`
	SSN         string        `json:"ssn" yaml:"ssn" xml:"ssn"`
	DLN         DriverLicense `json:"dln" yaml:"dln" xml:"dln"`
	DOB         string        `json:"dob" yaml:"dob" xml:"dob"`
	CreditCard  CreditCard    `json:"credit_card" yaml:"credit_card" xml:"credit_card"`
	BankAccount BankAccount   `json:"bank_account" yaml:"bank_account" xml:"bank_account"`
}
