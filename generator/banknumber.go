package generator

import (
	"strconv"
	"strings"
)

type NumberType string

const (
	AmericanExpress NumberType = "American Express"
	Discover        NumberType = "Discover"
	MasterCard      NumberType = "MasterCard"
	Visa            NumberType = "Visa"
	Routing         NumberType = "Routing"
)

// CardTypes lists the credit card networks in their unweighted order.
func CardTypes() []NumberType {
	return []NumberType{AmericanExpress, Discover, MasterCard, Visa}
}

type numberRule struct {
	prefixes []string
	length   int
}

var numberRules = map[NumberType]numberRule{
	Visa:            {prefixes: []string{"4539", "4556", "4916", "4532", "4929", "40240071", "4485", "4716", "4"}, length: 16},
	MasterCard:      {prefixes: []string{"51", "52", "53", "54", "55"}, length: 16},
	AmericanExpress: {prefixes: []string{"34", "37"}, length: 15},
	Discover:        {prefixes: []string{"6011"}, length: 16},
	Routing:         {prefixes: []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}, length: 9},
}

// NumberLength is the total number of digits BankNumber produces for t.
func NumberLength(t NumberType) int {
	return ruleFor(t).length
}

// BankNumber returns a Luhn-valid card or routing number. Unknown types use the Visa rules.
func (g *Generator) BankNumber(t NumberType) string {
	rule := ruleFor(t)
	return CompleteNumber(g.rnd, rule.prefixes, rule.length)
}

func ruleFor(t NumberType) numberRule {
	rule, ok := numberRules[t]
	if !ok {
		return numberRules[Visa]
	}
	return rule
}

// CompleteNumber picks a prefix, pads it with random digits to length-1 and
// appends the Luhn check digit.
func CompleteNumber(r *Random, prefixes []string, length int) string {
	prefix, _ := ChooseUniform(r, prefixes)

	var sb strings.Builder
	sb.WriteString(prefix)
	for sb.Len() < length-1 {
		sb.WriteByte(byte('0' + r.IntN(10)))
	}

	partial := sb.String()
	return partial + strconv.Itoa(checkDigit(partial))
}

// checkDigit doubles every second digit starting from the rightmost one of
// the partial number, where the check digit will sit on its right.
func checkDigit(partial string) int {
	sum := 0
	for i := 0; i < len(partial); i++ {
		d := int(partial[len(partial)-1-i] - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

// Luhn reports whether number is all digits and passes the mod 10 check.
func Luhn(number string) bool {
	if number == "" {
		return false
	}

	sum := 0
	for i := 0; i < len(number); i++ {
		c := number[len(number)-1-i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if i%2 == 1 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}
	return sum%10 == 0
}
