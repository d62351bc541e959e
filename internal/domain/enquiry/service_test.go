package enquiry

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSubmitPopulatesOptionalFields(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	e, err := svc.Submit(context.Background(), &CreateEnquiryRequest{
		Name:    "Sam Reed",
		Email:   "sam@example.com",
		Phone:   "+1 555 0100",
		Message: "Do you allow dogs at the cabins?",
	}, "203.0.113.9", "Mozilla/5.0")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if e.Status != StatusNew {
		t.Fatalf("Status = %v, want new", e.Status)
	}
	if !e.Phone.Valid || e.Phone.String != "+1 555 0100" {
		t.Fatalf("Phone = %+v", e.Phone)
	}
	if e.Subject.Valid {
		t.Fatalf("Subject = %+v, want null", e.Subject)
	}
	if !e.IPAddress.Valid || e.IPAddress.String != "203.0.113.9" {
		t.Fatalf("IPAddress = %+v", e.IPAddress)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	var ids []uuid.UUID
	for i := 0; i < 3; i++ {
		e, err := svc.Submit(ctx, &CreateEnquiryRequest{
			Name:    "Guest",
			Email:   "guest@example.com",
			Message: "A question about availability in July.",
		}, "", "")
		if err != nil {
			t.Fatalf("Submit() error = %v", err)
		}
		ids = append(ids, e.ID)
	}

	if err := svc.UpdateStatus(ctx, ids[0], StatusAnswered); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	status := StatusNew
	list, total, err := svc.List(ctx, &status, 50, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("List(new) = %d items, total %d, want 2/2", len(list), total)
	}

	list, total, err = svc.List(ctx, nil, 50, 0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 3 || len(list) != 3 {
		t.Fatalf("List(all) = %d items, total %d, want 3/3", len(list), total)
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	err := svc.UpdateStatus(context.Background(), uuid.New(), Status("archived"))
	if !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("UpdateStatus() error = %v, want ErrInvalidStatus", err)
	}

	err = svc.UpdateStatus(context.Background(), uuid.New(), StatusAnswered)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateStatus() error = %v, want ErrNotFound", err)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepository(), nil)

	_, err := svc.GetByID(context.Background(), uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID() error = %v, want ErrNotFound", err)
	}
}
