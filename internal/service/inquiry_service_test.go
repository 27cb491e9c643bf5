package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/craftroast/backend/internal/model"
)

type mockInquiryRepo struct {
	saveFunc func(ctx context.Context, inq *model.ProductInquiry) error
	saved    []*model.ProductInquiry
}

func (m *mockInquiryRepo) Save(ctx context.Context, inq *model.ProductInquiry) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, inq); err != nil {
			return err
		}
	}
	m.saved = append(m.saved, inq)
	return nil
}

func TestInquiryService_Submit_Success(t *testing.T) {
	repo := &mockInquiryRepo{}
	mail := &mockMailer{}
	svc := NewInquiryService(repo, mail)

	inq := &model.ProductInquiry{
		Name:    "Dave",
		Email:   "dave@example.com",
		Product: "Ethiopia Natural 250g",
		Message: "Is this a light roast?",
	}
	if err := svc.Submit(context.Background(), inq); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved inquiry, got %d", len(repo.saved))
	}
	if len(mail.subjects) != 1 || mail.subjects[0] != "New Product Inquiry" {
		t.Errorf("unexpected subjects: %v", mail.subjects)
	}
	if !strings.Contains(mail.bodies[0], "Product: Ethiopia Natural 250g") {
		t.Errorf("expected product in mail body, got %q", mail.bodies[0])
	}
}

func TestInquiryService_Submit_SanitizesAllFields(t *testing.T) {
	repo := &mockInquiryRepo{}
	mail := &mockMailer{}
	svc := NewInquiryService(repo, mail)

	inq := &model.ProductInquiry{
		Name:    `<img src=x onerror=alert(1)>Dave`,
		Email:   "dave@example.com",
		Product: "<u>Decaf</u>",
		Message: "<p>question</p>",
	}
	if err := svc.Submit(context.Background(), inq); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	saved := repo.saved[0]
	if saved.Name != "Dave" {
		t.Errorf("expected name sanitized, got %q", saved.Name)
	}
	if saved.Product != "Decaf" {
		t.Errorf("expected product sanitized, got %q", saved.Product)
	}
	if saved.Message != "question" {
		t.Errorf("expected message sanitized, got %q", saved.Message)
	}
}

func TestInquiryService_Submit_StoreFailureSkipsEmail(t *testing.T) {
	repo := &mockInquiryRepo{
		saveFunc: func(ctx context.Context, inq *model.ProductInquiry) error {
			return errors.New("storage unavailable")
		},
	}
	mail := &mockMailer{}
	svc := NewInquiryService(repo, mail)

	err := svc.Submit(context.Background(), &model.ProductInquiry{
		Name: "Dave", Email: "dave@example.com", Product: "Decaf", Message: "q",
	})

	var se *StoreError
	if !errors.As(err, &se) {
		t.Fatalf("expected StoreError, got %v", err)
	}
	if se.Entity != "product inquiry" {
		t.Errorf("expected entity \"product inquiry\", got %q", se.Entity)
	}
	if len(mail.subjects) != 0 {
		t.Error("expected no email attempt after a store failure")
	}
}

func TestInquiryService_Submit_DispatchFailureCarriesUpstream(t *testing.T) {
	repo := &mockInquiryRepo{}
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, subject, body string) error {
			return errors.New("relay rejected: spam score too high")
		},
	}
	svc := NewInquiryService(repo, mail)

	err := svc.Submit(context.Background(), &model.ProductInquiry{
		Name: "Dave", Email: "dave@example.com", Product: "Decaf", Message: "q",
	})

	var de *DispatchError
	if !errors.As(err, &de) {
		t.Fatalf("expected DispatchError, got %v", err)
	}
	if !strings.Contains(de.Error(), "relay rejected: spam score too high") {
		t.Errorf("expected upstream message preserved, got %q", de.Error())
	}
	if len(repo.saved) != 1 {
		t.Error("expected the row to be persisted before the dispatch attempt")
	}
}
