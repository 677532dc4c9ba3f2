package sqlite

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"memo-whisper/internal/app/model"
)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS memos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    file_name TEXT NOT NULL,
    source_path TEXT NOT NULL,
    mp3_file_name TEXT NOT NULL,
    audio_duration INTEGER NOT NULL DEFAULT 0,
    transcription TEXT NOT NULL DEFAULT '',
    note_path TEXT NOT NULL DEFAULT '',
    processed_at TIMESTAMP NOT NULL,
    has_error INTEGER NOT NULL DEFAULT 0,
    error_message TEXT NOT NULL DEFAULT ''
);`

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(dbFilePath string) *SQLiteDB {
	db, err := sql.Open("sqlite3", dbFilePath)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := db.Exec(createTableSQL); err != nil {
		log.Fatalf("Failed to create memos table: %v\n", err)
	}
	return &SQLiteDB{db: db}
}

func (sdb *SQLiteDB) Close() error {
	return sdb.db.Close()
}

func (sdb *SQLiteDB) CheckIfFileProcessed(fileName string) (int, error) {
	query := `SELECT id FROM memos WHERE file_name = ? AND has_error = 0`
	row := sdb.db.QueryRow(query, fileName)
	var id int
	err := row.Scan(&id)
	return id, err
}

func (sdb *SQLiteDB) RecordToDB(sourcePath, fileName, mp3FileName string, audioDuration int, transcription, notePath string,
	processedAt time.Time, hasError int, errorMessage string) {
	insertSQL := `INSERT INTO memos (file_name, source_path, mp3_file_name, audio_duration, transcription, note_path, processed_at, has_error, error_message) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`
	_, err := sdb.db.Exec(insertSQL, fileName, sourcePath, mp3FileName, audioDuration, transcription, notePath, processedAt, hasError, errorMessage)
	if err != nil {
		log.Fatalf("Failed to insert data into database: %v\n", err)
	}
}

func (sdb *SQLiteDB) GetAll() ([]model.Memo, error) {
	sqlStr := `
		SELECT id, file_name, source_path, mp3_file_name, audio_duration, transcription, note_path, processed_at, has_error, error_message
		FROM memos
		ORDER BY processed_at DESC;`
	rows, err := sdb.db.Query(sqlStr)
	if err != nil {
		return nil, fmt.Errorf("query failed: %v", err)
	}
	defer rows.Close()

	memos := make([]model.Memo, 0)

	for rows.Next() {
		var m model.Memo
		err = rows.Scan(&m.ID, &m.FileName, &m.SourcePath, &m.Mp3FileName, &m.AudioDuration,
			&m.Transcription, &m.NotePath, &m.ProcessedAt, &m.HasError, &m.ErrorMessage)
		if err != nil {
			return nil, fmt.Errorf("db scan failed: %v", err)
		}

		memos = append(memos, m)
	}
	return memos, nil
}
