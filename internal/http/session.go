package http

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"boekhouding/internal/cache"
	"boekhouding/internal/log"
	"boekhouding/internal/page"
)

// SessionCookie names the cookie tying a browser tab to its invoice page.
const SessionCookie = "factuur_sessie"

// session is one open invoice page. mu serialises the events of the page
// the way the browser's single thread would.
type session struct {
	mu   sync.Mutex
	id   string
	page *page.Page
}

type sessionStore struct {
	cache *cache.LRUCache[*session]
	ttl   time.Duration
}

func newSessionStore(maxSize int, ttl time.Duration, logger *log.Logger) *sessionStore {
	logger = logger.WithComponent(log.ComponentSession)
	return &sessionStore{
		cache: cache.NewLRUCache(maxSize, ttl, cache.WithEvictHook(func(id string, _ *session) {
			logger.Debug("Invoice session evicted", log.FieldSessionID, id)
		})),
		ttl: ttl,
	}
}

// create stores a new session for p.
func (st *sessionStore) create(p *page.Page) *session {
	sess := &session{id: uuid.NewString(), page: p}
	st.cache.Set(sess.id, sess)
	return sess
}

// lookup finds the session named by the request cookie.
func (st *sessionStore) lookup(r *http.Request) (*session, bool) {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return nil, false
	}
	if _, err := uuid.Parse(c.Value); err != nil {
		return nil, false
	}
	return st.cache.Get(c.Value)
}

func (st *sessionStore) cookie(r *http.Request, sess *session) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.id,
		Path:     "/facturen",
		MaxAge:   int(st.ttl.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
}

func (st *sessionStore) size() int {
	return st.cache.Size()
}
