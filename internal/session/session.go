// Package session persists chat transcripts: the ordered inputs typed into an
// interpreter, and the outputs, stack snapshots, and errors they produced.
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Kind classifies a transcript entry.
type Kind string

// Entry kinds.
const (
	Input  Kind = "input"
	Output Kind = "output"
	Debug  Kind = "debug"
	Error  Kind = "error"
)

// Entry is one item of a chat transcript.
type Entry struct {
	Kind Kind   `yaml:"type"`
	Text string `yaml:"text"`
}

// Chat is a named transcript.
type Chat struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Date        time.Time `yaml:"date"`
	AllowDelete bool      `yaml:"allowDelete"`
	Session     []Entry   `yaml:"session"`
}

// Record appends an entry to the chat.
func (chat *Chat) Record(kind Kind, text string) {
	chat.Session = append(chat.Session, Entry{kind, text})
}

// Inputs returns the text of every input entry, in order.
func (chat *Chat) Inputs() []string {
	var inputs []string
	for _, ent := range chat.Session {
		if ent.Kind == Input {
			inputs = append(inputs, ent.Text)
		}
	}
	return inputs
}

// Untitled names a chat renamed to nothing.
const Untitled = "(Untitled)"

// Rename sets the chat's name, or Untitled if name is empty.
func (chat *Chat) Rename(name string) {
	if name == "" {
		name = Untitled
	}
	chat.Name = name
}

// Store holds chats, most recently saved first.
type Store struct {
	Chats []Chat `yaml:"chats"`

	now func() time.Time
}

// Load reads a store from a YAML file; a missing file loads a new store,
// holding only the undeletable Getting Started and Reference chats.
func Load(path string) (*Store, error) {
	return load(path, time.Now)
}

func load(path string, now func() time.Time) (*Store, error) {
	st := Store{now: now}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		st.Chats = seedChats(st.timeNow())
		return &st, nil
	} else if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("invalid session file %v: %w", path, err)
	}
	return &st, nil
}

// Save writes the store to a YAML file, replacing it atomically.
func (st *Store) Save(path string) error {
	data, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Chat returns a copy of the first chat with the given name, or a new empty
// chat with a fresh id if there is none.
func (st *Store) Chat(name string) (Chat, error) {
	for _, chat := range st.Chats {
		if chat.Name == name {
			return chat, nil
		}
	}
	id, err := uuid.NewUUID()
	if err != nil {
		return Chat{}, err
	}
	return Chat{
		ID:          id.String(),
		Name:        name,
		Date:        st.timeNow(),
		AllowDelete: true,
	}, nil
}

// Put stores the chat at the front, replacing any chat with the same id.
func (st *Store) Put(chat Chat) {
	chat.Date = st.timeNow()
	if i := st.index(chat.ID); i >= 0 {
		st.Chats = append(st.Chats[:i], st.Chats[i+1:]...)
	}
	st.Chats = append(st.Chats, Chat{})
	copy(st.Chats[1:], st.Chats)
	st.Chats[0] = chat
}

// Errors returned by Remove.
var (
	ErrNotFound    = errors.New("no such chat")
	ErrUndeletable = errors.New("chat may not be deleted")
)

// Remove deletes the chat with the given id, unless it disallows deletion.
func (st *Store) Remove(id string) error {
	i := st.index(id)
	if i < 0 {
		return ErrNotFound
	}
	if !st.Chats[i].AllowDelete {
		return ErrUndeletable
	}
	st.Chats = append(st.Chats[:i], st.Chats[i+1:]...)
	return nil
}

func (st *Store) index(id string) int {
	for i, chat := range st.Chats {
		if chat.ID == id {
			return i
		}
	}
	return -1
}

func (st *Store) timeNow() time.Time {
	if st.now != nil {
		return st.now()
	}
	return time.Now()
}
