package services

import (
	"sort"

	"conference-management-api/models"
)

// In-memory store fakes shared by the review and listing service tests.

type fakePaperStore struct {
	papers  map[int]*models.Paper
	history []models.PaperStatusHistory
	saveErr error
}

func newFakePaperStore(papers ...*models.Paper) *fakePaperStore {
	s := &fakePaperStore{papers: make(map[int]*models.Paper)}
	for _, p := range papers {
		s.papers[p.PaperID] = p
	}
	return s
}

func (s *fakePaperStore) FindByID(id int) (*models.Paper, error) {
	p, ok := s.papers[id]
	if !ok {
		return nil, notFoundf("paper %d", id)
	}
	cp := *p
	return &cp, nil
}

func (s *fakePaperStore) Save(paper *models.Paper, hist *models.PaperStatusHistory) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *paper
	s.papers[paper.PaperID] = &cp
	if hist != nil {
		s.history = append(s.history, *hist)
	}
	return nil
}

func (s *fakePaperStore) ListByStatus(status string) ([]models.Paper, error) {
	var out []models.Paper
	for _, p := range s.papers {
		if status == StatusFilterAll || p.Status == status {
			out = append(out, *p)
		}
	}
	sortPapersNewestFirst(out)
	return out, nil
}

func (s *fakePaperStore) ListByOwner(userID int) ([]models.Paper, error) {
	var out []models.Paper
	for _, p := range s.papers {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sortPapersNewestFirst(out)
	return out, nil
}

func (s *fakePaperStore) Delete(id int) error {
	if _, ok := s.papers[id]; !ok {
		return notFoundf("paper %d", id)
	}
	delete(s.papers, id)
	return nil
}

func sortPapersNewestFirst(papers []models.Paper) {
	sort.Slice(papers, func(i, j int) bool {
		a, b := papers[i].CreateAt, papers[j].CreateAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
}

type fakePaymentStore struct {
	payments map[int]*models.Payment
	history  []models.PaymentStatusHistory
	saveErr  error
}

func newFakePaymentStore(payments ...*models.Payment) *fakePaymentStore {
	s := &fakePaymentStore{payments: make(map[int]*models.Payment)}
	for _, p := range payments {
		s.payments[p.PaymentID] = p
	}
	return s
}

func (s *fakePaymentStore) FindByID(id int) (*models.Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, notFoundf("payment %d", id)
	}
	cp := *p
	return &cp, nil
}

func (s *fakePaymentStore) Save(payment *models.Payment, hist *models.PaymentStatusHistory) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *payment
	s.payments[payment.PaymentID] = &cp
	if hist != nil {
		s.history = append(s.history, *hist)
	}
	return nil
}

func (s *fakePaymentStore) ListByStatus(status string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range s.payments {
		if status == StatusFilterAll || p.Status == status {
			out = append(out, *p)
		}
	}
	sortPaymentsNewestFirst(out)
	return out, nil
}

func (s *fakePaymentStore) ListByOwner(userID int) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range s.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sortPaymentsNewestFirst(out)
	return out, nil
}

func sortPaymentsNewestFirst(payments []models.Payment) {
	sort.Slice(payments, func(i, j int) bool {
		a, b := payments[i].CreateAt, payments[j].CreateAt
		if a == nil || b == nil {
			return a != nil
		}
		return a.After(*b)
	})
}

// recordingNotifier captures decision notifications for assertions.
type recordingNotifier struct {
	paperEvents   []notifiedEvent
	paymentEvents []notifiedEvent
}

type notifiedEvent struct {
	entityID int
	eventKey string
	notes    string
}

func (n *recordingNotifier) NotifyPaperDecision(paper *models.Paper, eventKey, notes string) {
	n.paperEvents = append(n.paperEvents, notifiedEvent{paper.PaperID, eventKey, notes})
}

func (n *recordingNotifier) NotifyPaymentDecision(payment *models.Payment, eventKey, notes string) {
	n.paymentEvents = append(n.paymentEvents, notifiedEvent{payment.PaymentID, eventKey, notes})
}
