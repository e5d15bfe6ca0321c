package generator

import (
	"errors"
	"testing"
	"time"

	"github.com/n0rdy/mockdata/refdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonConsistency(t *testing.T) {
	g := newTestGenerator(t, 30)

	for i := 0; i < 200; i++ {
		p, err := g.Person("")
		require.NoError(t, err)

		assert.Regexp(t, guidPattern, p.GUID)
		assert.Regexp(t, hashPattern, p.UniqueHash)
		assert.True(t, p.Name.Gender.Valid())

		assert.Equal(t, p.Address.Zip, p.Address2.Zip)
		assert.Equal(t, p.Address.State, p.Address2.State)

		for _, phone := range []string{p.Phone.Home, p.Phone.Mobile, p.Phone.Work} {
			assert.Regexp(t, phonePattern, phone)
		}

		assert.Regexp(t, ssnPattern, p.SSN)
		if r, ok := ssnByState[p.Address.State.Code]; ok {
			assert.Equal(t, r.minPrefix, atoi(t, p.SSN[:3]))
		}

		assert.Equal(t, p.Address.State.Code, p.DLN.State)
		assert.True(t, Luhn(p.CreditCard.Number))
		assert.True(t, Luhn(p.BankAccount.Routing))

		dob, err := time.Parse(DateLayout, p.DOB)
		require.NoError(t, err)
		assert.True(t, dob.Year() >= 1944 && dob.Year() <= 2004, dob)
	}
}

func TestPersonInState(t *testing.T) {
	g := newTestGenerator(t, 31)

	for i := 0; i < 50; i++ {
		p, err := g.Person("ar")
		require.NoError(t, err)

		assert.Equal(t, "AR", p.Address.State.Code)
		assert.Equal(t, "Arkansas", p.Address.State.Name)
		assert.Equal(t, "429", p.SSN[:3])
		assert.Equal(t, "AR", p.DLN.State)

		areaCodes := map[string]bool{"72201": true, "72034": true}
		if areaCodes[p.Address.Zip] {
			assert.Equal(t, "501", p.Phone.Home[:3])
		}
	}
}

func TestPersonSelfEmployed(t *testing.T) {
	g := newTestGenerator(t, 32, WithSelfEmployedLikelihood(1))

	for i := 0; i < 50; i++ {
		p, err := g.Person("TX")
		require.NoError(t, err)
		assert.Contains(t, p.Company, p.Name.Last+" ")
		assert.Contains(t, p.Internet.Domain, lowerAlnum(p.Name.Last))
	}
}

func TestPersonIsReproducibleWithSeed(t *testing.T) {
	a, err := newTestGenerator(t, 33).Person("")
	require.NoError(t, err)
	b, err := newTestGenerator(t, 33).Person("")
	require.NoError(t, err)

	a.UniqueHash, b.UniqueHash = "", ""
	assert.Equal(t, a, b)
}

func TestPersonUnknownState(t *testing.T) {
	g := newTestGenerator(t, 34)

	_, err := g.Person("QQ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLookupFailure))
}

func TestEmptyStoreFailsLoudly(t *testing.T) {
	g := New(refdata.NewMemoryStore(refdata.Dataset{}), WithRandom(NewRandom(1)))

	_, err := g.Person("")
	assert.ErrorIs(t, err, ErrLookupFailure)
	_, err = g.FullName(refdata.Female)
	assert.ErrorIs(t, err, ErrLookupFailure)
	_, err = g.Street()
	assert.ErrorIs(t, err, ErrLookupFailure)

	// pure generators never touch the store
	assert.Len(t, g.BankNumber(Visa), 16)
	assert.NotEmpty(t, g.CreditCard(true).Number)
}

func atoi(t *testing.T, s string) int {
	t.Helper()
	n := 0
	for _, c := range s {
		require.True(t, c >= '0' && c <= '9', s)
		n = n*10 + int(c-'0')
	}
	return n
}

func lowerAlnum(s string) string {
	out := make([]rune, 0, len(s))
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		}
	}
	return string(out)
}
