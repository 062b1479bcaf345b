package entity

import jsoniter "github.com/json-iterator/go"

// Snapshot is the persisted form of a catalog.
type Snapshot struct {
	Books   []BookRecord   `json:"books"`
	Readers []ReaderRecord `json:"readers"`
}

type BookRecord struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

type ReaderRecord struct {
	Name          string       `json:"name"`
	BorrowedBooks []BookRecord `json:"borrowedBooks"`
}

func (b BookRecord) Key() BookKey {
	return BookKey{Title: b.Title, Author: b.Author}
}

// UnmarshalJSON also accepts the legacy "isAvailable" key. A missing flag means available.
func (b *BookRecord) UnmarshalJSON(data []byte) error {
	var raw struct {
		Title       string `json:"title"`
		Author      string `json:"author"`
		Available   *bool  `json:"available"`
		IsAvailable *bool  `json:"isAvailable"`
	}

	if err := jsoniter.ConfigFastest.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.Title = raw.Title
	b.Author = raw.Author
	switch {
	case raw.Available != nil:
		b.Available = *raw.Available
	case raw.IsAvailable != nil:
		b.Available = *raw.IsAvailable
	default:
		b.Available = true
	}

	return nil
}
