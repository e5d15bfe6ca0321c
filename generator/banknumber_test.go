package generator

import (
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestLuhn(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"79927398713", true},
		{"79927398710", false},
		{"4539148803436467", true},
		{"0", true},
		{"", false},
		{"4539-1488", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.want, Luhn(tt.number))
		})
	}
}

func TestLuhnAgainstFakeCards(t *testing.T) {
	faker := gofakeit.New(17)
	for i := 0; i < 100; i++ {
		number := faker.CreditCardNumber(&gofakeit.CreditCardOptions{Gaps: false})
		assert.True(t, Luhn(number), number)
	}
}

func TestBankNumber(t *testing.T) {
	tests := []struct {
		numberType NumberType
		length     int
		prefixes   []string
	}{
		{Visa, 16, []string{"4"}},
		{MasterCard, 16, []string{"51", "52", "53", "54", "55"}},
		{AmericanExpress, 15, []string{"34", "37"}},
		{Discover, 16, []string{"6011"}},
		{Routing, 9, []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}},
		{NumberType("Diners Club"), 16, []string{"4"}},
	}

	g := newTestGenerator(t, 21)
	for _, tt := range tests {
		t.Run(string(tt.numberType), func(t *testing.T) {
			assert.Equal(t, tt.length, NumberLength(tt.numberType))

			for i := 0; i < 200; i++ {
				number := g.BankNumber(tt.numberType)
				assert.Len(t, number, tt.length)
				assert.True(t, Luhn(number), number)
				assert.True(t, hasAnyPrefix(number, tt.prefixes), number)
			}
		})
	}
}

func TestCompleteNumberFlippedDigitFails(t *testing.T) {
	r := NewRandom(8)
	for i := 0; i < 100; i++ {
		number := CompleteNumber(r, []string{"6011"}, 16)
		last := number[len(number)-1]
		flipped := number[:len(number)-1] + string('0'+(last-'0'+1)%10)
		assert.False(t, Luhn(flipped), flipped)
	}
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
