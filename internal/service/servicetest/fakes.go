// Package servicetest - in-memory реализации репозиториев для тестов сервисов
package servicetest

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"

	"minigames_backend/internal/engine"
	"minigames_backend/internal/model"
	"minigames_backend/internal/repository"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
)

type snapshotter interface {
	snapshot() func()
}

// TxManager выполняет fn сразу, а при ошибке откатывает состояние фейков
type TxManager struct {
	stores []snapshotter
	Calls  int
}

func NewTxManager(stores ...snapshotter) *TxManager {
	return &TxManager{stores: stores}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Calls++
	restores := make([]func(), 0, len(m.stores))
	for _, s := range m.stores {
		restores = append(restores, s.snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

func (m *TxManager) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

// Users фейк repository.UserRepository
type Users struct {
	mu     sync.Mutex
	users  map[int]model.User
	nextID int
}

func NewUsers() *Users {
	return &Users{users: make(map[int]model.User), nextID: 1}
}

// Add заводит пользователя с балансом, возвращает ID
func (u *Users) Add(login string, balance int64) int {
	id, _ := u.CreateUser(context.Background(), &model.User{
		Name:    login,
		Login:   login,
		Balance: decimal.NewFromInt(balance),
	})
	return id
}

// Balance баланс пользователя (для проверок)
func (u *Users) Balance(id int) decimal.Decimal {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.users[id].Balance
}

func (u *Users) snapshot() func() {
	u.mu.Lock()
	saved := maps.Clone(u.users)
	u.mu.Unlock()
	return func() {
		u.mu.Lock()
		u.users = saved
		u.mu.Unlock()
	}
}

func (u *Users) CreateUser(_ context.Context, user *model.User) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, existing := range u.users {
		if existing.Login == user.Login {
			return 0, repository.ErrAlreadyExists
		}
	}
	id := u.nextID
	u.nextID++
	stored := *user
	stored.ID = id
	u.users[id] = stored
	return id, nil
}

func (u *Users) GetUserByLogin(_ context.Context, login string) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, user := range u.users {
		if user.Login == login {
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (u *Users) GetUserByID(_ context.Context, id int) (*model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

func (u *Users) GetBalanceForUpdate(ctx context.Context, id int) (decimal.Decimal, error) {
	user, err := u.GetUserByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return user.Balance, nil
}

func (u *Users) Debit(_ context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.users[id]
	if !ok {
		return decimal.Zero, repository.ErrNotFound
	}
	if user.Balance.LessThan(amount) {
		return decimal.Zero, repository.ErrInsufficientBalance
	}
	user.Balance = user.Balance.Sub(amount)
	u.users[id] = user
	return user.Balance, nil
}

func (u *Users) Credit(_ context.Context, id int, amount decimal.Decimal) (decimal.Decimal, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	user, ok := u.users[id]
	if !ok {
		return decimal.Zero, repository.ErrNotFound
	}
	user.Balance = user.Balance.Add(amount)
	u.users[id] = user
	return user.Balance, nil
}

// Sessions фейк repository.AuthRepository
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]model.Session
	users    *Users
}

func NewSessions(users *Users) *Sessions {
	return &Sessions{sessions: make(map[string]model.Session), users: users}
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Sessions) snapshot() func() {
	s.mu.Lock()
	saved := maps.Clone(s.sessions)
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		s.sessions = saved
		s.mu.Unlock()
	}
}

func (s *Sessions) CreateSession(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *Sessions) GetSession(_ context.Context, sessionID string) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &session, nil
}

func (s *Sessions) DeleteSession(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

func (s *Sessions) GetUserBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	session, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.users.GetUserByID(ctx, session.UserID)
}

// BetLogs фейк repository.BetLogRepository
type BetLogs struct {
	mu   sync.Mutex
	logs []model.BetLog
}

func NewBetLogs() *BetLogs {
	return &BetLogs{}
}

// All все записи в порядке вставки
func (b *BetLogs) All() []model.BetLog {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.logs)
}

func (b *BetLogs) snapshot() func() {
	b.mu.Lock()
	saved := slices.Clone(b.logs)
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		b.logs = saved
		b.mu.Unlock()
	}
}

func (b *BetLogs) Create(_ context.Context, log *model.BetLog) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logs = append(b.logs, *log)
	return nil
}

func (b *BetLogs) ListByUser(_ context.Context, userID int, limit int) ([]model.BetLog, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	res := make([]model.BetLog, 0, limit)
	for i := len(b.logs) - 1; i >= 0 && len(res) < limit; i-- {
		if b.logs[i].UserID == userID {
			res = append(res, b.logs[i])
		}
	}
	return res, nil
}

// Rounds фейк repository.BlackjackRepository
type Rounds struct {
	mu     sync.Mutex
	rounds map[int]model.BlackjackRound
}

func NewRounds() *Rounds {
	return &Rounds{rounds: make(map[int]model.BlackjackRound)}
}

// Has есть ли незавершенный раунд у пользователя
func (r *Rounds) Has(userID int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.rounds[userID]
	return ok
}

func (r *Rounds) snapshot() func() {
	r.mu.Lock()
	saved := maps.Clone(r.rounds)
	r.mu.Unlock()
	return func() {
		r.mu.Lock()
		r.rounds = saved
		r.mu.Unlock()
	}
}

func (r *Rounds) GetRound(_ context.Context, userID int) (*model.BlackjackRound, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	round, ok := r.rounds[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	round.Player = slices.Clone(round.Player)
	round.Dealer = slices.Clone(round.Dealer)
	round.Deck = slices.Clone(round.Deck)
	return &round, nil
}

func (r *Rounds) SaveRound(_ context.Context, round *model.BlackjackRound) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rounds[round.UserID] = *round
	return nil
}

func (r *Rounds) DeleteRound(_ context.Context, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rounds, userID)
	return nil
}

// Leaderboard фейк repository.LeaderboardRepository. Err возвращается из Record
type Leaderboard struct {
	mu      sync.Mutex
	records []model.BetLog
	Err     error
}

func NewLeaderboard() *Leaderboard {
	return &Leaderboard{}
}

func (l *Leaderboard) Records() []model.BetLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.records)
}

func (l *Leaderboard) Record(_ context.Context, log model.BetLog) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Err != nil {
		return l.Err
	}
	l.records = append(l.records, log)
	return nil
}

func (l *Leaderboard) Top(_ context.Context, game engine.GameType, limit int) ([]model.LeaderboardEntry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	byUser := make(map[int]*model.LeaderboardEntry)
	for _, r := range l.records {
		if game != "" && r.Game != game {
			continue
		}
		e, ok := byUser[r.UserID]
		if !ok {
			e = &model.LeaderboardEntry{UserID: r.UserID}
			byUser[r.UserID] = e
		}
		e.Profit = e.Profit.Add(r.Profit)
		e.Rounds++
	}

	entries := make([]model.LeaderboardEntry, 0, len(byUser))
	for _, e := range byUser {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Profit.Equal(entries[j].Profit) {
			return entries[i].Profit.GreaterThan(entries[j].Profit)
		}
		return entries[i].UserID < entries[j].UserID
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// FixedRNG всегда возвращает одно и то же (по модулю n для IntN)
type FixedRNG struct {
	Int   int
	Float float64
}

func (f FixedRNG) IntN(n int) int   { return f.Int % n }
func (f FixedRNG) Float64() float64 { return f.Float }
