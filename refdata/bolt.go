package refdata

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/n0rdy/mockdata/logger"
	bolt "go.etcd.io/bbolt"
)

const (
	firstNamesBucket = "first_names"
	lastNamesBucket  = "last_names"
	streetsBucket    = "streets"
	zipcodesBucket   = "zipcodes"
	zipIndexBucket   = "zip_index"

	DefaultBoltTimeout = time.Second

	keySeparator = '|'
)

var topBuckets = []string{firstNamesBucket, lastNamesBucket, streetsBucket, zipcodesBucket, zipIndexBucket}

// BoltConfig is everything OpenBoltStore needs to know about the database file.
type BoltConfig struct {
	Path     string
	Timeout  time.Duration
	ReadOnly bool
}

type BoltStore struct {
	db       *bolt.DB
	readOnly bool
	picker   Picker
}

func OpenBoltStore(conf BoltConfig, opts ...Option) (*BoltStore, error) {
	if conf.Timeout <= 0 {
		conf.Timeout = DefaultBoltTimeout
	}

	boltDb, err := bolt.Open(conf.Path, 0600, &bolt.Options{Timeout: conf.Timeout, ReadOnly: conf.ReadOnly})
	if err != nil {
		logger.Error("error on opening BoltDB file: "+conf.Path, err)
		return nil, err
	}

	if !conf.ReadOnly {
		err = boltDb.Update(func(tx *bolt.Tx) error {
			for _, name := range topBuckets {
				if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
					logger.Error("error on creating BoltDB bucket: "+name, err)
					return err
				}
			}
			return nil
		})
		if err != nil {
			boltDb.Close()
			return nil, err
		}
	}

	return &BoltStore{
		db:       boltDb,
		readOnly: conf.ReadOnly,
		picker:   newStoreConfig(opts).picker,
	}, nil
}

func (bs *BoltStore) Close() error {
	return bs.db.Close()
}

// Import replaces every table with the contents of ds in a single transaction.
func (bs *BoltStore) Import(ds Dataset) error {
	if bs.readOnly {
		return ErrReadOnly
	}

	err := bs.db.Update(func(tx *bolt.Tx) error {
		for _, name := range topBuckets {
			if err := tx.DeleteBucket([]byte(name)); err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
				return err
			}
			if _, err := tx.CreateBucket([]byte(name)); err != nil {
				return err
			}
		}

		if err := putFirstNames(tx.Bucket([]byte(firstNamesBucket)), ds.FirstNames); err != nil {
			return err
		}
		if err := putLastNames(tx.Bucket([]byte(lastNamesBucket)), ds.LastNames); err != nil {
			return err
		}
		if err := putStreets(tx.Bucket([]byte(streetsBucket)), ds.Streets); err != nil {
			return err
		}
		return putZipcodes(tx.Bucket([]byte(zipcodesBucket)), tx.Bucket([]byte(zipIndexBucket)), ds.Zipcodes)
	})
	if err != nil {
		logger.Error("error on importing reference data to BoltDB", err)
		return err
	}
	return nil
}

func putFirstNames(b *bolt.Bucket, names []FirstName) error {
	for _, fn := range names {
		gb, err := b.CreateBucketIfNotExists([]byte(fn.Gender))
		if err != nil {
			return err
		}
		serialized, err := serialize(fn)
		if err != nil {
			logger.Error("error on serializing first name: "+fn.Name, err)
			return err
		}
		if err := gb.Put(rankKey(fn.Rank, fn.Name), serialized); err != nil {
			return err
		}
	}
	return nil
}

func putLastNames(b *bolt.Bucket, names []LastName) error {
	for _, ln := range names {
		serialized, err := serialize(ln)
		if err != nil {
			logger.Error("error on serializing last name: "+ln.Name, err)
			return err
		}
		if err := b.Put(rankKey(ln.Rank, ln.Name), serialized); err != nil {
			return err
		}
	}
	return nil
}

func putStreets(b *bolt.Bucket, streets []Street) error {
	for _, s := range streets {
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		if err := b.Put(itob(seq), []byte(s.Name)); err != nil {
			return err
		}
	}
	return nil
}

func putZipcodes(b *bolt.Bucket, index *bolt.Bucket, zipcodes []ZipRecord) error {
	for _, zr := range zipcodes {
		stateCode := normalizeStateCode(zr.StateCode)
		sb, err := b.CreateBucketIfNotExists([]byte(stateCode))
		if err != nil {
			return err
		}
		seq, err := sb.NextSequence()
		if err != nil {
			return err
		}
		serialized, err := serialize(zr)
		if err != nil {
			logger.Error("error on serializing zip record: "+zr.Zip, err)
			return err
		}
		if err := sb.Put(zipKey(zr.Zip, seq), serialized); err != nil {
			return err
		}
		if err := index.Put([]byte(zr.Zip), []byte(stateCode)); err != nil {
			return err
		}
	}
	return nil
}

func (bs *BoltStore) RandomFirstName(gender Gender, maxRank int) (string, error) {
	if !gender.Valid() {
		return "", ErrInvalidGender
	}

	var fn FirstName
	err := bs.db.View(func(tx *bolt.Tx) error {
		b := nestedBucket(tx, firstNamesBucket, string(gender))
		if b == nil {
			return ErrNotFound
		}
		v, err := bs.pickRanked(b, maxRank)
		if err != nil {
			return err
		}
		return deserialize(v, &fn)
	})
	if err != nil {
		return "", err
	}
	return fn.Name, nil
}

func (bs *BoltStore) RandomLastName(maxRank int) (string, error) {
	var ln LastName
	err := bs.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(lastNamesBucket))
		if b == nil {
			return ErrNotFound
		}
		v, err := bs.pickRanked(b, maxRank)
		if err != nil {
			return err
		}
		return deserialize(v, &ln)
	})
	if err != nil {
		return "", err
	}
	return ln.Name, nil
}

func (bs *BoltStore) RandomStreetName() (string, error) {
	var name string
	err := bs.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(streetsBucket))
		if b == nil {
			return ErrNotFound
		}
		v, err := bs.pickAny(b)
		if err != nil {
			return err
		}
		name = string(v)
		return nil
	})
	return name, err
}

func (bs *BoltStore) RandomZip(filter ZipFilter) (ZipRecord, error) {
	var zr ZipRecord
	stateCode := normalizeStateCode(filter.StateCode)

	err := bs.db.View(func(tx *bolt.Tx) error {
		zb := tx.Bucket([]byte(zipcodesBucket))
		if zb == nil {
			return ErrNotFound
		}

		var v []byte
		var err error
		switch {
		case filter.Zip != "":
			v, err = bs.pickZip(tx, zb, filter.Zip, stateCode)
		case stateCode != "":
			sb := zb.Bucket([]byte(stateCode))
			if sb == nil {
				return ErrNotFound
			}
			v, err = bs.pickAny(sb)
		default:
			v, err = bs.pickAnyZip(zb)
		}
		if err != nil {
			return err
		}
		return deserialize(v, &zr)
	})
	if err != nil {
		return ZipRecord{}, err
	}
	return zr, nil
}

func (bs *BoltStore) pickZip(tx *bolt.Tx, zb *bolt.Bucket, zip string, stateCode string) ([]byte, error) {
	index := tx.Bucket([]byte(zipIndexBucket))
	if index == nil {
		return nil, ErrNotFound
	}
	indexed := index.Get([]byte(zip))
	if indexed == nil || (stateCode != "" && string(indexed) != stateCode) {
		return nil, ErrNotFound
	}
	sb := zb.Bucket(indexed)
	if sb == nil {
		return nil, ErrNotFound
	}

	prefix := append([]byte(zip), keySeparator)
	values := make([][]byte, 0)
	c := sb.Cursor()
	for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
		values = append(values, v)
	}
	return pick(bs.picker, values)
}

// pickAnyZip weights each state bucket by its row count so every row is
// equally likely.
func (bs *BoltStore) pickAnyZip(zb *bolt.Bucket) ([]byte, error) {
	type stateRows struct {
		name []byte
		rows int
	}

	states := make([]stateRows, 0)
	total := 0
	err := zb.ForEach(func(k, v []byte) error {
		if v != nil {
			return nil
		}
		n := zb.Bucket(k).Stats().KeyN
		states = append(states, stateRows{name: k, rows: n})
		total += n
		return nil
	})
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, ErrNotFound
	}

	i := bs.picker.IntN(total)
	for _, s := range states {
		if i < s.rows {
			return nth(zb.Bucket(s.name), i)
		}
		i -= s.rows
	}
	return nil, ErrNotFound
}

func (bs *BoltStore) pickAny(b *bolt.Bucket) ([]byte, error) {
	n := b.Stats().KeyN
	if n == 0 {
		return nil, ErrNotFound
	}
	return nth(b, bs.picker.IntN(n))
}

// pickRanked relies on the rank-first key layout: rows within the ceiling
// form a prefix of the cursor walk.
func (bs *BoltStore) pickRanked(b *bolt.Bucket, maxRank int) ([]byte, error) {
	values := make([][]byte, 0)
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if !withinRank(rankOf(k), maxRank) {
			break
		}
		values = append(values, v)
	}
	return pick(bs.picker, values)
}

// Counts reports the number of rows per table.
func (bs *BoltStore) Counts() (Counts, error) {
	var counts Counts
	err := bs.db.View(func(tx *bolt.Tx) error {
		if b := tx.Bucket([]byte(firstNamesBucket)); b != nil {
			counts.FirstNames = nestedKeyN(b)
		}
		if b := tx.Bucket([]byte(lastNamesBucket)); b != nil {
			counts.LastNames = b.Stats().KeyN
		}
		if b := tx.Bucket([]byte(streetsBucket)); b != nil {
			counts.Streets = b.Stats().KeyN
		}
		if b := tx.Bucket([]byte(zipcodesBucket)); b != nil {
			counts.Zipcodes = nestedKeyN(b)
		}
		return nil
	})
	if err != nil {
		logger.Error("error on counting BoltDB reference rows", err)
		return Counts{}, err
	}
	return counts, nil
}

func nestedKeyN(b *bolt.Bucket) int {
	total := 0
	b.ForEach(func(k, v []byte) error {
		if v == nil {
			total += b.Bucket(k).Stats().KeyN
		}
		return nil
	})
	return total
}

func nestedBucket(tx *bolt.Tx, parent string, child string) *bolt.Bucket {
	b := tx.Bucket([]byte(parent))
	if b == nil {
		return nil
	}
	return b.Bucket([]byte(child))
}

func nth(b *bolt.Bucket, i int) ([]byte, error) {
	c := b.Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		if i == 0 {
			return v, nil
		}
		i--
	}
	return nil, fmt.Errorf("%w: index out of range", ErrNotFound)
}

func rankKey(rank int, name string) []byte {
	return append(append(itob(uint64(rank)), keySeparator), name...)
}

func rankOf(key []byte) int {
	if len(key) < 8 {
		return 0
	}
	return int(binary.BigEndian.Uint64(key[:8]))
}

func zipKey(zip string, seq uint64) []byte {
	return append(append([]byte(zip), keySeparator), itob(seq)...)
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
