//go:generate go run go.uber.org/mock/mockgen -source=trial.go -destination=../mocks/mock_trial_repository.go -package=mocks
package repositories

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/near/borsh-go"

	"tune-lab/domain"
	apperrors "tune-lab/errors"
)

type ITrialRepository interface {
	Create(study string) (domain.TrialRecord, error)
	Save(record domain.TrialRecord) error
	Get(study string, number int64) (domain.TrialRecord, error)
	List(study string) ([]domain.TrialRecord, error)
}

type TrialRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTrialRepository(db *badger.DB, log *slog.Logger) TrialRepository {
	return TrialRepository{db: db, log: log}
}

// trialKey formats "trial:{study}:{number_padded}".
// The 12-digit zero padding keeps trials of a study in numeric order under
// a plain lexicographic prefix scan.
func trialKey(study string, number int64) []byte {
	return []byte(fmt.Sprintf("trial:%s:%012d", study, number))
}

func seqKey(study string) []byte {
	return []byte(fmt.Sprintf("trial-seq:%s", study))
}

// Create allocates the next trial number of the study and persists a fresh
// RUNNING record. Number allocation and the first write share one
// transaction so two concurrent creators can never collide.
func (r TrialRepository) Create(study string) (domain.TrialRecord, error) {
	record := domain.TrialRecord{
		ID:            uuid.NewString(),
		Study:         study,
		State:         domain.TrialRunning,
		Params:        map[string]domain.Value{},
		Distributions: map[string]domain.Distribution{},
		UserAttrs:     map[string]domain.Value{},
		SystemAttrs:   map[string]domain.Value{},
		Intermediate:  map[int64]float64{},
		StartedAt:     time.Now().UTC().UnixNano(),
	}
	err := r.db.Update(func(txn *badger.Txn) error {
		var next int64
		item, err := txn.Get(seqKey(study))
		switch err {
		case nil:
			if err := item.Value(func(v []byte) error {
				next = int64(binary.BigEndian.Uint64(v))
				return nil
			}); err != nil {
				return err
			}
		case badger.ErrKeyNotFound:
			next = 0
		default:
			return err
		}

		var seq [8]byte
		binary.BigEndian.PutUint64(seq[:], uint64(next+1))
		if err := txn.Set(seqKey(study), seq[:]); err != nil {
			return err
		}

		record.Number = next
		bytes, err := borsh.Serialize(record)
		if err != nil {
			return err
		}
		return txn.Set(trialKey(study, next), bytes)
	})
	if err != nil {
		return domain.TrialRecord{}, err
	}
	r.log.Debug("Trial created", "study", study, "number", record.Number)
	return record, nil
}

// Save overwrites the stored snapshot; callers persist after every mutation.
func (r TrialRepository) Save(record domain.TrialRecord) error {
	bytes, err := borsh.Serialize(record)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(trialKey(record.Study, record.Number), bytes)
	})
}

func (r TrialRepository) Get(study string, number int64) (domain.TrialRecord, error) {
	var record domain.TrialRecord
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(trialKey(study, number))
		if err == badger.ErrKeyNotFound {
			return apperrors.ErrTrialNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return borsh.Deserialize(&record, v)
		})
	})
	return record, err
}

// List returns every trial of the study in creation order, courtesy of the
// padded key scheme.
func (r TrialRepository) List(study string) ([]domain.TrialRecord, error) {
	var records []domain.TrialRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("trial:%s:", study))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record domain.TrialRecord
			err := it.Item().Value(func(v []byte) error {
				return borsh.Deserialize(&record, v)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	return records, err
}
