package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/toughlife/community-backend/internal/models"
	"github.com/toughlife/community-backend/pkg/password"
)

// fakeStore реализует services.UserStore и services.MessageStore в памяти,
// по образцу поведения postgres-слоя.
type fakeStore struct {
	users    []*models.User
	messages []*models.Message
	nextUser uint
	nextMsg  uint
}

func (f *fakeStore) CreateUser(u *models.User) error {
	for _, e := range f.users {
		if e.Username == u.Username || e.Email == u.Email {
			return errors.New(`duplicate key value violates unique constraint "idx_users_username"`)
		}
	}
	f.nextUser++
	u.ID = f.nextUser
	u.IsActive = true // default:true в схеме
	u.CreatedAt = time.Now()
	f.users = append(f.users, u)
	return nil
}

func (f *fakeStore) FindUserByLogin(login string) (*models.User, error) {
	for _, u := range f.users {
		if u.Username == login || u.Email == login {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) FindActiveUserByID(id uint) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id && u.IsActive {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) FindUserByStoredHash(hash string) (*models.User, error) {
	for _, u := range f.users {
		if u.PasswordHash == hash {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) LoginTaken(username, email string) (bool, error) {
	for _, u := range f.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) UpdateLastLogin(id uint) error {
	for _, u := range f.users {
		if u.ID == id {
			now := time.Now()
			u.LastLogin = &now
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeStore) SaveMessage(m *models.Message) error {
	f.nextMsg++
	m.ID = f.nextMsg
	m.CreatedAt = time.Now()
	f.messages = append(f.messages, m)
	return nil
}

// RecentMessages: newest-first LIMIT + reverse, то есть хронологический хвост
func (f *fakeStore) RecentMessages(limit int) ([]models.Message, error) {
	msgs := f.messages
	if limit < len(msgs) {
		msgs = msgs[len(msgs)-limit:]
	}
	out := make([]models.Message, len(msgs))
	for i, m := range msgs {
		out[i] = *m
		for _, u := range f.users {
			if u.ID == m.UserID {
				out[i].User = *u
			}
		}
	}
	return out, nil
}

func (f *fakeStore) addUser(t *testing.T, username, email, pass string) *models.User {
	t.Helper()
	hash, err := password.Hash(pass)
	require.NoError(t, err)
	u := &models.User{Username: username, Email: email, PasswordHash: hash}
	require.NoError(t, f.CreateUser(u))
	return u
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
