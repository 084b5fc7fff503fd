package service_test

import (
	"errors"

	"github.com/google/uuid"

	"go-ricemill/internal/model"
	"go-ricemill/internal/repository"
)

// Hand-written fakes with overridable function fields. A call on an unset
// field fails loudly so tests only stub what they mean to exercise.
var errFakeNotStubbed = errors.New("fake: method not stubbed")

type fakeDealerRepo struct {
	CreateFn               func(*model.Dealer) error
	FindAllFn              func() ([]model.Dealer, error)
	FindByIDFn             func(uuid.UUID) (*model.Dealer, error)
	FindByDealerIDFn       func(string) (*model.Dealer, error)
	FindActiveByDealerIDFn func(string) (*model.Dealer, error)
	UpdateFn               func(*model.Dealer) error
}

func (f *fakeDealerRepo) Create(d *model.Dealer) error {
	if f.CreateFn == nil {
		return errFakeNotStubbed
	}
	return f.CreateFn(d)
}

func (f *fakeDealerRepo) FindAll() ([]model.Dealer, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakeDealerRepo) FindByID(id uuid.UUID) (*model.Dealer, error) {
	if f.FindByIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByIDFn(id)
}

func (f *fakeDealerRepo) FindByDealerID(dealerID string) (*model.Dealer, error) {
	if f.FindByDealerIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByDealerIDFn(dealerID)
}

func (f *fakeDealerRepo) FindActiveByDealerID(dealerID string) (*model.Dealer, error) {
	if f.FindActiveByDealerIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindActiveByDealerIDFn(dealerID)
}

func (f *fakeDealerRepo) Update(d *model.Dealer) error {
	if f.UpdateFn == nil {
		return errFakeNotStubbed
	}
	return f.UpdateFn(d)
}

type fakeOrderRepo struct {
	CreateFn                func(*model.DealerOrder) error
	FindByIDFn              func(uuid.UUID) (*model.DealerOrder, error)
	FindAllFn               func() ([]model.DealerOrder, error)
	FindByDealerIDFn        func(string) ([]model.DealerOrder, error)
	FindSettledByDealerIDFn func(string) ([]model.DealerOrder, error)
	FindByDealerRefFn       func(uuid.UUID, int) ([]model.DealerOrder, error)
	SaveFn                  func(*model.DealerOrder) error
	ApproveFn               func(uuid.UUID, string) (*model.DealerOrder, error)
}

func (f *fakeOrderRepo) Create(o *model.DealerOrder) error {
	if f.CreateFn == nil {
		return errFakeNotStubbed
	}
	return f.CreateFn(o)
}

func (f *fakeOrderRepo) FindByID(id uuid.UUID) (*model.DealerOrder, error) {
	if f.FindByIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByIDFn(id)
}

func (f *fakeOrderRepo) FindAll() ([]model.DealerOrder, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakeOrderRepo) FindByDealerID(dealerID string) ([]model.DealerOrder, error) {
	if f.FindByDealerIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByDealerIDFn(dealerID)
}

func (f *fakeOrderRepo) FindSettledByDealerID(dealerID string) ([]model.DealerOrder, error) {
	if f.FindSettledByDealerIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindSettledByDealerIDFn(dealerID)
}

func (f *fakeOrderRepo) FindByDealerRef(dealerRef uuid.UUID, limit int) ([]model.DealerOrder, error) {
	if f.FindByDealerRefFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByDealerRefFn(dealerRef, limit)
}

func (f *fakeOrderRepo) Save(o *model.DealerOrder) error {
	if f.SaveFn == nil {
		return errFakeNotStubbed
	}
	return f.SaveFn(o)
}

func (f *fakeOrderRepo) Approve(orderID uuid.UUID, approverID string) (*model.DealerOrder, error) {
	if f.ApproveFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.ApproveFn(orderID, approverID)
}

type fakeRiceRepo struct {
	CreateFn                func(*model.Rice) error
	FindAllFn               func() ([]model.Rice, error)
	FindByIDFn              func(uuid.UUID) (*model.Rice, error)
	FindByGodownFn          func(uuid.UUID) ([]model.Rice, error)
	UpdateFn                func(*model.Rice) error
	ReserveAndDeductFn      func(string, string, model.BagSize, int) (*model.Rice, error)
	StockSummaryFn          func() ([]repository.RiceTypeSummary, repository.BagTotals, error)
	TotalQuantityByStatusFn func(model.RiceStatus) (float64, error)
	TotalQuantityByTypeFn   func() (map[string]float64, error)
}

func (f *fakeRiceRepo) Create(r *model.Rice) error {
	if f.CreateFn == nil {
		return errFakeNotStubbed
	}
	return f.CreateFn(r)
}

func (f *fakeRiceRepo) FindAll() ([]model.Rice, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakeRiceRepo) FindByID(id uuid.UUID) (*model.Rice, error) {
	if f.FindByIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByIDFn(id)
}

func (f *fakeRiceRepo) FindByGodown(godownID uuid.UUID) ([]model.Rice, error) {
	if f.FindByGodownFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByGodownFn(godownID)
}

func (f *fakeRiceRepo) Update(r *model.Rice) error {
	if f.UpdateFn == nil {
		return errFakeNotStubbed
	}
	return f.UpdateFn(r)
}

func (f *fakeRiceRepo) ReserveAndDeduct(riceType, brand string, size model.BagSize, quantityBags int) (*model.Rice, error) {
	if f.ReserveAndDeductFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.ReserveAndDeductFn(riceType, brand, size, quantityBags)
}

func (f *fakeRiceRepo) StockSummary() ([]repository.RiceTypeSummary, repository.BagTotals, error) {
	if f.StockSummaryFn == nil {
		return nil, repository.BagTotals{}, errFakeNotStubbed
	}
	return f.StockSummaryFn()
}

func (f *fakeRiceRepo) TotalQuantityByStatus(status model.RiceStatus) (float64, error) {
	if f.TotalQuantityByStatusFn == nil {
		return 0, errFakeNotStubbed
	}
	return f.TotalQuantityByStatusFn(status)
}

func (f *fakeRiceRepo) TotalQuantityByType() (map[string]float64, error) {
	if f.TotalQuantityByTypeFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.TotalQuantityByTypeFn()
}

type fakeCounterRepo struct {
	NextFn func(string) (int64, error)
}

func (f *fakeCounterRepo) Next(name string) (int64, error) {
	if f.NextFn == nil {
		return 0, errFakeNotStubbed
	}
	return f.NextFn(name)
}

type fakeInvoiceRepo struct {
	CreateFn          func(*model.Invoice) error
	FindAllFn         func() ([]model.Invoice, error)
	FindByIDFn        func(uuid.UUID) (*model.Invoice, error)
	FindByDealerIDFn  func(string) ([]model.Invoice, error)
	FindByDealerRefFn func(uuid.UUID, int) ([]model.Invoice, error)
}

func (f *fakeInvoiceRepo) Create(i *model.Invoice) error {
	if f.CreateFn == nil {
		return errFakeNotStubbed
	}
	return f.CreateFn(i)
}

func (f *fakeInvoiceRepo) FindAll() ([]model.Invoice, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakeInvoiceRepo) FindByID(id uuid.UUID) (*model.Invoice, error) {
	if f.FindByIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByIDFn(id)
}

func (f *fakeInvoiceRepo) FindByDealerID(dealerID string) ([]model.Invoice, error) {
	if f.FindByDealerIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByDealerIDFn(dealerID)
}

func (f *fakeInvoiceRepo) FindByDealerRef(dealerRef uuid.UUID, limit int) ([]model.Invoice, error) {
	if f.FindByDealerRefFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByDealerRefFn(dealerRef, limit)
}

type fakePaymentRepo struct {
	FindAllFn  func() ([]model.Payment, error)
	FindByIDFn func(uuid.UUID) (*model.Payment, error)
	RecordFn   func(*model.Payment) error
}

func (f *fakePaymentRepo) FindAll() ([]model.Payment, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakePaymentRepo) FindByID(id uuid.UUID) (*model.Payment, error) {
	if f.FindByIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByIDFn(id)
}

func (f *fakePaymentRepo) Record(p *model.Payment) error {
	if f.RecordFn == nil {
		return errFakeNotStubbed
	}
	return f.RecordFn(p)
}

type fakeSaleRepo struct {
	CreateFn           func(*model.Sale) error
	FindAllFn          func() ([]model.Sale, error)
	FindByIDFn         func(uuid.UUID) (*model.Sale, error)
	SaveFn             func(*model.Sale) error
	FindRecentFn       func(int) ([]model.Sale, error)
	PaymentSummaryFn   func() (*repository.PaymentSummary, error)
	LedgerFn           func() ([]repository.LedgerEntry, error)
	CountOutstandingFn func() (int64, error)
}

func (f *fakeSaleRepo) Create(s *model.Sale) error {
	if f.CreateFn == nil {
		return errFakeNotStubbed
	}
	return f.CreateFn(s)
}

func (f *fakeSaleRepo) FindAll() ([]model.Sale, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakeSaleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	if f.FindByIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByIDFn(id)
}

func (f *fakeSaleRepo) Save(s *model.Sale) error {
	if f.SaveFn == nil {
		return errFakeNotStubbed
	}
	return f.SaveFn(s)
}

func (f *fakeSaleRepo) FindRecent(limit int) ([]model.Sale, error) {
	if f.FindRecentFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindRecentFn(limit)
}

func (f *fakeSaleRepo) PaymentSummary() (*repository.PaymentSummary, error) {
	if f.PaymentSummaryFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.PaymentSummaryFn()
}

func (f *fakeSaleRepo) Ledger() ([]repository.LedgerEntry, error) {
	if f.LedgerFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.LedgerFn()
}

func (f *fakeSaleRepo) CountOutstanding() (int64, error) {
	if f.CountOutstandingFn == nil {
		return 0, errFakeNotStubbed
	}
	return f.CountOutstandingFn()
}

type fakePaddyRepo struct {
	FindAllFn       func() ([]model.Paddy, error)
	FindByGodownFn  func(uuid.UUID) ([]model.Paddy, error)
	RecordFn        func(*model.Paddy) error
	SummaryByTypeFn func() ([]repository.PaddyTypeSummary, float64, error)
	TotalWeightFn   func() (float64, error)
}

func (f *fakePaddyRepo) FindAll() ([]model.Paddy, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakePaddyRepo) FindByGodown(godownID uuid.UUID) ([]model.Paddy, error) {
	if f.FindByGodownFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByGodownFn(godownID)
}

func (f *fakePaddyRepo) Record(p *model.Paddy) error {
	if f.RecordFn == nil {
		return errFakeNotStubbed
	}
	return f.RecordFn(p)
}

func (f *fakePaddyRepo) SummaryByType() ([]repository.PaddyTypeSummary, float64, error) {
	if f.SummaryByTypeFn == nil {
		return nil, 0, errFakeNotStubbed
	}
	return f.SummaryByTypeFn()
}

func (f *fakePaddyRepo) TotalWeight() (float64, error) {
	if f.TotalWeightFn == nil {
		return 0, errFakeNotStubbed
	}
	return f.TotalWeightFn()
}

type fakeGodownRepo struct {
	CreateFn     func(*model.Godown) error
	FindAllFn    func() ([]model.Godown, error)
	FindByIDFn   func(uuid.UUID) (*model.Godown, error)
	FindByNameFn func(string) (*model.Godown, error)
	UpdateFn     func(*model.Godown) error
}

func (f *fakeGodownRepo) Create(g *model.Godown) error {
	if f.CreateFn == nil {
		return errFakeNotStubbed
	}
	return f.CreateFn(g)
}

func (f *fakeGodownRepo) FindAll() ([]model.Godown, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakeGodownRepo) FindByID(id uuid.UUID) (*model.Godown, error) {
	if f.FindByIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByIDFn(id)
}

func (f *fakeGodownRepo) FindByName(name string) (*model.Godown, error) {
	if f.FindByNameFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByNameFn(name)
}

func (f *fakeGodownRepo) Update(g *model.Godown) error {
	if f.UpdateFn == nil {
		return errFakeNotStubbed
	}
	return f.UpdateFn(g)
}

type fakeUserRepo struct {
	FindByEmailFn        func(string) (*model.User, error)
	FindByIDFn           func(uuid.UUID) (*model.User, error)
	FindByDealerIDFn     func(string) (*model.User, error)
	CreateFn             func(*model.User) error
	UpdateFn             func(*model.User) error
	UpdatePasswordFn     func(uuid.UUID, string) error
	FindAllFn            func() ([]model.User, error)
	UpdateTokenVersionFn func(uuid.UUID, string) error
	UpdateLastSeenFn     func(uuid.UUID) error
}

func (f *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	if f.FindByEmailFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByEmailFn(email)
}

func (f *fakeUserRepo) FindByID(id uuid.UUID) (*model.User, error) {
	if f.FindByIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByIDFn(id)
}

func (f *fakeUserRepo) FindByDealerID(dealerID string) (*model.User, error) {
	if f.FindByDealerIDFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByDealerIDFn(dealerID)
}

func (f *fakeUserRepo) Create(u *model.User) error {
	if f.CreateFn == nil {
		return errFakeNotStubbed
	}
	return f.CreateFn(u)
}

func (f *fakeUserRepo) Update(u *model.User) error {
	if f.UpdateFn == nil {
		return errFakeNotStubbed
	}
	return f.UpdateFn(u)
}

func (f *fakeUserRepo) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	if f.UpdatePasswordFn == nil {
		return errFakeNotStubbed
	}
	return f.UpdatePasswordFn(userID, hashedPassword)
}

func (f *fakeUserRepo) FindAll() ([]model.User, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakeUserRepo) UpdateTokenVersion(userID uuid.UUID, version string) error {
	if f.UpdateTokenVersionFn == nil {
		return errFakeNotStubbed
	}
	return f.UpdateTokenVersionFn(userID, version)
}

func (f *fakeUserRepo) UpdateLastSeen(userID uuid.UUID) error {
	if f.UpdateLastSeenFn == nil {
		return errFakeNotStubbed
	}
	return f.UpdateLastSeenFn(userID)
}

type fakeRoleRepo struct {
	FindAllFn      func() ([]model.Role, error)
	FindByCodeFn   func(string) (*model.Role, error)
	CreateFn       func(*model.Role) error
	SeedDefaultsFn func() error
}

func (f *fakeRoleRepo) FindAll() ([]model.Role, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakeRoleRepo) FindByCode(code string) (*model.Role, error) {
	if f.FindByCodeFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByCodeFn(code)
}

func (f *fakeRoleRepo) Create(r *model.Role) error {
	if f.CreateFn == nil {
		return errFakeNotStubbed
	}
	return f.CreateFn(r)
}

func (f *fakeRoleRepo) SeedDefaults() error {
	if f.SeedDefaultsFn == nil {
		return errFakeNotStubbed
	}
	return f.SeedDefaultsFn()
}

type fakePrivilegeRepo struct {
	FindByCodesFn  func([]string) ([]model.Privilege, error)
	FindAllFn      func() ([]model.Privilege, error)
	SeedDefaultsFn func() error
}

func (f *fakePrivilegeRepo) FindByCodes(codes []string) ([]model.Privilege, error) {
	if f.FindByCodesFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindByCodesFn(codes)
}

func (f *fakePrivilegeRepo) FindAll() ([]model.Privilege, error) {
	if f.FindAllFn == nil {
		return nil, errFakeNotStubbed
	}
	return f.FindAllFn()
}

func (f *fakePrivilegeRepo) SeedDefaults() error {
	if f.SeedDefaultsFn == nil {
		return errFakeNotStubbed
	}
	return f.SeedDefaultsFn()
}
