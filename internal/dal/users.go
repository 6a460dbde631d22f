package dal

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

// Display modes for schedule messages.
const (
	DisplayModeBlackout = "blackout"
	DisplayModeLight    = "light"
)

// User modes consumed by conversational flows outside this core.
const (
	ModeNormal  = "normal"
	ModeSupport = "support"
)

// Settings are the per-user notification preferences. The engine only reads
// them per dispatch decision; the bot surface mutates them.
type Settings struct {
	NotifyBefore       int    `json:"notify_before"`        // outage warning lead, minutes
	NotifyOutage       bool   `json:"notify_outage"`
	NotifyReturn       bool   `json:"notify_return"`
	NotifyReturnBefore int    `json:"notify_return_before"` // return warning lead, minutes
	NotifyChanges      bool   `json:"notify_changes"`
	DisplayMode        string `json:"display_mode"`
}

// DefaultSettings mirrors the defaults new users get.
func DefaultSettings() Settings {
	return Settings{
		NotifyBefore:       5,
		NotifyOutage:       true,
		NotifyReturn:       true,
		NotifyReturnBefore: 5,
		NotifyChanges:      true,
		DisplayMode:        DisplayModeBlackout,
	}
}

// User is one subscriber: a chat bound to a (region, queue) pair.
type User struct {
	ChatID    int64     `json:"chat_id"`
	Region    string    `json:"region"`
	Queue     string    `json:"queue"`
	Mode      string    `json:"mode"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"created_at"`
}

// SubscriptionPair is a distinct (region, queue) with at least one subscriber.
type SubscriptionPair struct {
	Region string
	Queue  string
}

func (s *BoltDB) GetUser(chatID int64) (User, bool, error) {
	var res User
	found := false

	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket([]byte(usersBucket)).Get(i64tob(chatID))
		if data == nil {
			return nil
		}
		found = true
		return json.Unmarshal(data, &res)
	})

	return res, found, err
}

// PutUser stores a user. CreatedAt is stamped on first insert and preserved
// on updates regardless of what the caller passed.
func (s *BoltDB) PutUser(u User) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(usersBucket))

		if data := b.Get(i64tob(u.ChatID)); data != nil {
			var existing User
			if err := json.Unmarshal(data, &existing); err != nil {
				return fmt.Errorf("unmarshal existing user chatID=%d: %w", u.ChatID, err)
			}
			u.CreatedAt = existing.CreatedAt
		} else {
			u.CreatedAt = s.clock.Now()
		}

		if u.Mode == "" {
			u.Mode = ModeNormal
		}

		data, err := json.Marshal(&u)
		if err != nil {
			return fmt.Errorf("marshal user chatID=%d: %w", u.ChatID, err)
		}
		if err := b.Put(i64tob(u.ChatID), data); err != nil {
			return fmt.Errorf("put user chatID=%d: %w", u.ChatID, err)
		}

		return nil
	})
}

func (s *BoltDB) DeleteUser(chatID int64) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.Bucket([]byte(usersBucket)).Delete(i64tob(chatID)); err != nil {
			return fmt.Errorf("delete user chatID=%d: %w", chatID, err)
		}
		return nil
	})
}

func (s *BoltDB) CountUsers() (int, error) {
	var res int
	err := s.db.View(func(tx *bbolt.Tx) error {
		res = tx.Bucket([]byte(usersBucket)).Stats().KeyN
		return nil
	})
	return res, err
}

// GetSubscriptionPairs returns each distinct (region, queue) that has at
// least one subscriber.
func (s *BoltDB) GetSubscriptionPairs() ([]SubscriptionPair, error) {
	seen := make(map[SubscriptionPair]struct{})
	var res []SubscriptionPair

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(usersBucket)).ForEach(func(_, v []byte) error {
			var u User
			if err := json.Unmarshal(v, &u); err != nil {
				return fmt.Errorf("unmarshal user: %w", err)
			}
			if u.Region == "" || u.Queue == "" {
				return nil
			}

			pair := SubscriptionPair{Region: u.Region, Queue: u.Queue}
			if _, ok := seen[pair]; !ok {
				seen[pair] = struct{}{}
				res = append(res, pair)
			}
			return nil
		})
	})

	return res, err
}

// GetUsersByPair returns all subscribers of a (region, queue).
func (s *BoltDB) GetUsersByPair(region, queue string) ([]User, error) {
	var res []User

	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(usersBucket)).ForEach(func(_, v []byte) error {
			var u User
			if err := json.Unmarshal(v, &u); err != nil {
				return fmt.Errorf("unmarshal user: %w", err)
			}
			if u.Region == region && u.Queue == queue {
				res = append(res, u)
			}
			return nil
		})
	})

	return res, err
}

// SetUserMode flips the opaque conversational-mode flag.
func (s *BoltDB) SetUserMode(chatID int64, mode string) error {
	u, found, err := s.GetUser(chatID)
	if err != nil {
		return fmt.Errorf("get user chatID=%d: %w", chatID, err)
	}
	if !found {
		return fmt.Errorf("user chatID=%d not found", chatID)
	}

	u.Mode = mode
	return s.PutUser(u)
}
