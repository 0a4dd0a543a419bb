package locale

import (
	"fmt"
	"sort"
)

// Key names an entry in the resource table.
type Key string

// UI strings shared by the chat, registration and API layers.
const (
	KeyGreeting           Key = "chat.greeting"
	KeyApology            Key = "chat.apology"
	KeySpeakerUser        Key = "chat.speaker.user"
	KeySpeakerAssistant   Key = "chat.speaker.assistant"
	KeyChatFailed         Key = "chat.failed"
	KeySubmitInFlight     Key = "chat.busy"
	KeyRegisterSuccess    Key = "register.success"
	KeyRegisterFailed     Key = "register.failed"
	KeyRegisterInvalid    Key = "register.invalid"
	KeyTranscriptFilename Key = "chat.transcript.filename"
)

// Table maps (Key, Language) pairs to localized text.
type Table struct {
	entries map[Key]map[Language]string
}

// NewTable builds a Table and verifies that every topic and every UI key
// is defined for every supported language.
func NewTable(entries map[Key]map[Language]string) (*Table, error) {
	t := &Table{entries: entries}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// MustDefault returns the built-in table and panics if it is incomplete.
func MustDefault() *Table {
	t, err := NewTable(defaultEntries())
	if err != nil {
		panic(err)
	}
	return t
}

// RequiredKeys returns the keys every table must define.
func RequiredKeys() []Key {
	keys := []Key{
		KeyGreeting, KeyApology, KeySpeakerUser, KeySpeakerAssistant, KeyChatFailed,
		KeySubmitInFlight, KeyRegisterSuccess, KeyRegisterFailed, KeyRegisterInvalid, KeyTranscriptFilename,
	}
	for _, topic := range AllTopics() {
		keys = append(keys, topic.Key())
	}
	return keys
}

// Validate checks the completeness invariant.
func (t *Table) Validate() error {
	var missing []string
	for _, key := range RequiredKeys() {
		for _, lang := range Supported {
			if t.entries[key][lang] == "" {
				missing = append(missing, fmt.Sprintf("%s/%s", key, lang))
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("locale table incomplete: missing %v", missing)
	}
	return nil
}

// Text returns the string for key in lang. Unsupported languages resolve to English.
func (t *Table) Text(key Key, lang Language) string {
	values := t.entries[key]
	if s, ok := values[lang.OrEnglish()]; ok && s != "" {
		return s
	}
	return values[English]
}

// Response returns the canned answer for topic.
func (t *Table) Response(topic Topic, lang Language) string {
	if s := t.Text(topic.Key(), lang); s != "" {
		return s
	}
	return t.Text(Default.Key(), lang)
}
