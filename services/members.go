package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"mlm-ledger/models"
	"mlm-ledger/monitoring"

	"github.com/shopspring/decimal"
)

// Register создаёт участника и раздаёт бонусы за вступление вверх по
// реферальной цепочке согласно таблице процентов. Цепочка собирается до
// каких-либо изменений: дубликат логина или цикл не оставляют следов.
func (s *LedgerService) Register(name, username, password, ref string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" || username == "" || password == "" {
		return "", ErrMissingFields
	}
	if s.doc.FindUser(username) != nil {
		return "", ErrUsernameTaken
	}

	chain, err := s.uplineChain(ref, len(s.doc.Settings.Levels))
	if err != nil {
		return "", err
	}

	now := time.Now()
	s.doc.Users = append(s.doc.Users, models.User{
		Username: username,
		Name:     name,
		Password: password,
		Ref:      ref,
		Balance:  decimal.Zero,
		Bonus:    decimal.Zero,
		Created:  now,
	})

	info, _ := json.Marshal(map[string]string{"ref": ref})
	s.recordTx(username, models.TxJoin, decimal.Zero, string(info))

	joinFee := s.doc.Settings.JoinFee
	hundred := decimal.NewFromInt(100)
	for i, uplineName := range chain {
		// Ищем заново: append выше мог переразместить s.doc.Users
		up := s.doc.FindUser(uplineName)
		if up == nil {
			continue
		}
		pct := s.doc.Settings.Levels[i]
		amt := joinFee.Mul(pct).Div(hundred).Round(8)
		up.Balance = up.Balance.Add(amt).Round(8)
		up.Bonus = up.Bonus.Add(amt).Round(8)
		s.recordTx(up.Username, models.TxBonus, amt,
			fmt.Sprintf("bonus from %s level %d", username, i+1))
		monitoring.ReferralBonusesTotal.Inc()
	}

	if err := s.persist(); err != nil {
		return "", err
	}
	monitoring.RegistrationsTotal.Inc()
	return username, nil
}

// uplineChain собирает username аплайнов от ref вверх, не больше maxDepth.
// Возвращаются имена, а не указатели: список участников может быть
// переразмещён между сбором цепочки и начислением. Повторное появление
// username означает цикл в графе рефералов.
func (s *LedgerService) uplineChain(ref string, maxDepth int) ([]string, error) {
	visited := make(map[string]bool)
	var chain []string

	cur := ref
	for i := 0; i < maxDepth; i++ {
		if cur == "" {
			break
		}
		if visited[cur] {
			return nil, ErrCycleDetected
		}
		visited[cur] = true

		up := s.doc.FindUser(cur)
		if up == nil {
			break
		}
		chain = append(chain, up.Username)
		cur = up.Ref
	}
	return chain, nil
}

// List возвращает всех участников, новые первыми.
func (s *LedgerService) List() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := append([]models.User(nil), s.doc.Users...)
	sort.Slice(users, func(i, j int) bool {
		return users[i].Created.After(users[j].Created)
	})
	return users
}

// Get возвращает участника по username.
func (s *LedgerService) Get(username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user := s.doc.FindUser(username)
	if user == nil {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// Directs возвращает участников, приглашённых напрямую.
func (s *LedgerService) Directs(username string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.User
	for _, u := range s.doc.Users {
		if u.Ref == username {
			out = append(out, u)
		}
	}
	return out
}

// TeamCount считает всех участников в даунлайне обходом в глубину.
// Повторное посещение означает цикл – обход прерывается с ошибкой.
func (s *LedgerService) TeamCount(username string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	visited := map[string]bool{username: true}
	count := 0
	stack := []string{username}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, u := range s.doc.Users {
			if u.Ref != cur {
				continue
			}
			if visited[u.Username] {
				return 0, ErrCycleDetected
			}
			visited[u.Username] = true
			count++
			stack = append(stack, u.Username)
		}
	}
	return count, nil
}

// BuildTree рекурсивно строит реферальное дерево участника.
func (s *LedgerService) BuildTree(username string) (*models.TreeNode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	root := s.doc.FindUser(username)
	if root == nil {
		return nil, ErrUserNotFound
	}

	visited := map[string]bool{username: true}
	node, err := s.buildSubtree(root, visited)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func (s *LedgerService) buildSubtree(user *models.User, visited map[string]bool) (*models.TreeNode, error) {
	node := &models.TreeNode{
		Username: user.Username,
		Name:     user.Name,
		Children: []*models.TreeNode{},
	}
	for i := range s.doc.Users {
		child := &s.doc.Users[i]
		if child.Ref != user.Username {
			continue
		}
		if visited[child.Username] {
			return nil, ErrCycleDetected
		}
		visited[child.Username] = true

		sub, err := s.buildSubtree(child, visited)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, sub)
	}
	return node, nil
}

// Transactions возвращает до 100 последних записей участника.
func (s *LedgerService) Transactions(username string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Transaction
	for _, tx := range s.doc.Transactions {
		if tx.Username != username {
			continue
		}
		out = append(out, tx)
		if len(out) == 100 {
			break
		}
	}
	return out
}

// SimulateJoin регистрирует сгенерированного демо-участника под ref.
func (s *LedgerService) SimulateJoin(ref string) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		id := fmt.Sprintf("u%05d", rand.Intn(90000)+10000)
		name := "User " + id[len(id)-4:]
		username, err := s.Register(name, id, "pass123", ref)
		if err == ErrUsernameTaken {
			continue
		}
		return username, err
	}
	return "", ErrUsernameTaken
}
