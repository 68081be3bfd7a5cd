package payment

import (
	"context"
	"testing"
)

type fakePaymentRepo struct {
	byBillCode map[string]*Payment
	updates    int
}

func newFakePaymentRepo(records ...*Payment) *fakePaymentRepo {
	repo := &fakePaymentRepo{byBillCode: map[string]*Payment{}}
	for _, record := range records {
		repo.byBillCode[record.BillCode] = record
	}
	return repo
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *Payment) error {
	f.byBillCode[p.BillCode] = p
	return nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, p *Payment) error {
	f.updates++
	f.byBillCode[p.BillCode] = p
	return nil
}

func (f *fakePaymentRepo) FindByBillCode(ctx context.Context, billCode string) (*Payment, error) {
	return f.byBillCode[billCode], nil
}

func (f *fakePaymentRepo) FindByUserID(ctx context.Context, userID uint) ([]*Payment, error) {
	var out []*Payment
	for _, record := range f.byBillCode {
		if record.UserID == userID {
			out = append(out, record)
		}
	}
	return out, nil
}

func TestHandleReturnStatusMapping(t *testing.T) {
	tests := []struct {
		statusID string
		want     string
	}{
		{"1", StatusPaid},
		{"2", StatusFailed},
		{"3", StatusPending},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			repo := newFakePaymentRepo(&Payment{BillCode: "bill-1", Status: StatusPending})
			s := NewService(repo, nil)

			record, err := s.HandleReturn(context.Background(), "bill-1", tt.statusID)
			if err != nil {
				t.Fatalf("HandleReturn: %v", err)
			}
			if record.Status != tt.want {
				t.Errorf("Status = %q, want %q", record.Status, tt.want)
			}
			if repo.updates != 1 {
				t.Errorf("updates = %d", repo.updates)
			}
		})
	}
}

func TestHandleReturnRejectsUnknowns(t *testing.T) {
	repo := newFakePaymentRepo(&Payment{BillCode: "bill-1", Status: StatusPending})
	s := NewService(repo, nil)

	if _, err := s.HandleReturn(context.Background(), "missing", "1"); err == nil {
		t.Error("unknown bill code accepted")
	}
	if _, err := s.HandleReturn(context.Background(), "bill-1", "9"); err == nil {
		t.Error("unknown status code accepted")
	}
	if repo.updates != 0 {
		t.Errorf("updates = %d", repo.updates)
	}
}
