package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/dailywordwidget/dailyword/internal/wordday"
)

// stateSlotID is the fixed primary key of the single state row.
const stateSlotID = 1

type stateRow struct {
	ID               int64        `db:"id"`
	Word             *string      `db:"word"`
	Definition       *string      `db:"definition"`
	Phonetic         *string      `db:"phonetic"`
	PartOfSpeech     *string      `db:"part_of_speech"`
	Example          *string      `db:"example"`
	WordDate         *time.Time   `db:"word_date"`
	Language         *string      `db:"language"`
	SelectedLanguage *string      `db:"selected_language"`
	LastUpdate       *time.Time   `db:"last_update"`
	UpdatedAt        sql.NullTime `db:"updated_at"`
}

// DBStore keeps the daily word state in a single MySQL row.
type DBStore struct {
	db *sqlx.DB
}

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

func (s *DBStore) readRow() (*stateRow, error) {
	var row stateRow
	err := s.db.Get(&row, "SELECT * FROM daily_word_states WHERE id = ?", stateSlotID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.Get(daily_word_states) > %w", err)
	}
	return &row, nil
}

// DailyWord returns the stored word, or nil when none has been saved.
func (s *DBStore) DailyWord() (*wordday.DailyWord, error) {
	row, err := s.readRow()
	if err != nil {
		return nil, err
	}
	if row == nil || row.Word == nil {
		return nil, nil
	}
	word := wordday.DailyWord{Word: *row.Word}
	if row.Definition != nil {
		word.Definition = *row.Definition
	}
	if row.Phonetic != nil {
		word.Phonetic = *row.Phonetic
	}
	if row.PartOfSpeech != nil {
		word.PartOfSpeech = *row.PartOfSpeech
	}
	if row.Example != nil {
		word.Example = *row.Example
	}
	if row.WordDate != nil {
		word.Date = *row.WordDate
	}
	if row.Language != nil {
		word.Language = *row.Language
	}
	return &word, nil
}

// SaveDailyWord overwrites the stored word and stamps the last update with
// the word's date.
func (s *DBStore) SaveDailyWord(word *wordday.DailyWord) error {
	_, err := s.db.Exec(
		`INSERT INTO daily_word_states (id, word, definition, phonetic, part_of_speech, example, word_date, language, last_update)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			word = VALUES(word), definition = VALUES(definition), phonetic = VALUES(phonetic),
			part_of_speech = VALUES(part_of_speech), example = VALUES(example),
			word_date = VALUES(word_date), language = VALUES(language), last_update = VALUES(last_update)`,
		stateSlotID, word.Word, word.Definition, word.Phonetic, word.PartOfSpeech,
		word.Example, word.Date, word.Language, word.Date)
	if err != nil {
		return fmt.Errorf("db.Exec(upsert daily_word_states) > %w", err)
	}
	return nil
}

// LastUpdate returns the last refresh timestamp. ok is false when no word
// has ever been saved.
func (s *DBStore) LastUpdate() (time.Time, bool, error) {
	row, err := s.readRow()
	if err != nil {
		return time.Time{}, false, err
	}
	if row == nil || row.LastUpdate == nil {
		return time.Time{}, false, nil
	}
	return *row.LastUpdate, true, nil
}

// SelectedLanguage returns the stored language code, empty when unset.
func (s *DBStore) SelectedLanguage() (string, error) {
	row, err := s.readRow()
	if err != nil {
		return "", err
	}
	if row == nil || row.SelectedLanguage == nil {
		return "", nil
	}
	return *row.SelectedLanguage, nil
}

// SaveSelectedLanguage stores the language code without touching the word.
func (s *DBStore) SaveSelectedLanguage(code string) error {
	_, err := s.db.Exec(
		`INSERT INTO daily_word_states (id, selected_language) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE selected_language = VALUES(selected_language)`,
		stateSlotID, code)
	if err != nil {
		return fmt.Errorf("db.Exec(upsert selected_language) > %w", err)
	}
	return nil
}

// Clear removes the state row entirely.
func (s *DBStore) Clear() error {
	if _, err := s.db.Exec("DELETE FROM daily_word_states WHERE id = ?", stateSlotID); err != nil {
		return fmt.Errorf("db.Exec(delete daily_word_states) > %w", err)
	}
	return nil
}
