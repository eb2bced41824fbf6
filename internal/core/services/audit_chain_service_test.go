package services_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/apperrors"
	"github.com/SscSPs/bookkeeping_core/internal/core/domain"
	portsrepo "github.com/SscSPs/bookkeeping_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/bookkeeping_core/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_core/internal/core/services"
	"github.com/stretchr/testify/suite"
)

// memoryAuditRepo keeps chains in memory, keyed by entity.
type memoryAuditRepo struct {
	mu      sync.Mutex
	nextID  int64
	entries map[string][]domain.AuditEntry
}

var _ portsrepo.AuditRepositoryFacade = (*memoryAuditRepo)(nil)

func newMemoryAuditRepo() *memoryAuditRepo {
	return &memoryAuditRepo{entries: map[string][]domain.AuditEntry{}}
}

func chainKey(entityType, entityID string) string { return entityType + "/" + entityID }

func (r *memoryAuditRepo) ListAuditEntries(_ context.Context, entityType, entityID string) ([]domain.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditEntry, len(r.entries[chainKey(entityType, entityID)]))
	copy(out, r.entries[chainKey(entityType, entityID)])
	return out, nil
}

func (r *memoryAuditRepo) FindLatestAuditEntry(_ context.Context, entityType, entityID string) (*domain.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	chain := r.entries[chainKey(entityType, entityID)]
	if len(chain) == 0 {
		return nil, nil
	}
	head := chain[len(chain)-1]
	return &head, nil
}

func (r *memoryAuditRepo) LockChain(context.Context, string, string) error { return nil }

func (r *memoryAuditRepo) AppendAuditEntry(_ context.Context, entry *domain.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := chainKey(entry.EntityType, entry.EntityID)
	for _, e := range r.entries[key] {
		if e.Sequence == entry.Sequence {
			return apperrors.ErrDuplicate
		}
	}
	r.nextID++
	entry.ID = r.nextID
	r.entries[key] = append(r.entries[key], *entry)
	return nil
}

// tamper edits the stored entry at index i of a chain.
func (r *memoryAuditRepo) tamper(entityType, entityID string, i int, edit func(e *domain.AuditEntry)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	edit(&r.entries[chainKey(entityType, entityID)][i])
}

type AuditChainServiceTestSuite struct {
	suite.Suite
	repo    *memoryAuditRepo
	tx      *fakeTransactor
	service portssvc.AuditChainSvc
}

func (suite *AuditChainServiceTestSuite) SetupTest() {
	suite.repo = newMemoryAuditRepo()
	suite.tx = &fakeTransactor{}
	suite.service = services.NewAuditChainService(suite.tx, suite.repo,
		services.WithClock(fixedClock(time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC))))
}

func TestAuditChainServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuditChainServiceTestSuite))
}

func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func (suite *AuditChainServiceTestSuite) appendN(entityID string, n int) []*domain.AuditEntry {
	out := make([]*domain.AuditEntry, 0, n)
	for i := 0; i < n; i++ {
		e, err := suite.service.Append(context.Background(), "invoice", entityID, "update", map[string]any{"step": i})
		suite.Require().NoError(err)
		out = append(out, e)
	}
	return out
}

func (suite *AuditChainServiceTestSuite) TestAppend_GenesisUsesCanonicalJSON() {
	entry, err := suite.service.Append(context.Background(), "invoice", "1", "create",
		map[string]any{"total": 2500, "invoice_number": "S-20250201-000001", "note": "<b>"})

	suite.Require().NoError(err)
	canonical := `{"invoice_number":"S-20250201-000001","note":"<b>","total":2500}`
	suite.Equal(canonical, entry.Snapshot)
	suite.Equal(sha256Hex(canonical), entry.DataHash)
	suite.Equal(sha256Hex(entry.DataHash), entry.ChainHash)
	suite.Nil(entry.PreviousHash)
	suite.Equal(int64(1), entry.Sequence)
	suite.Equal(1, suite.tx.calls)
}

func (suite *AuditChainServiceTestSuite) TestAppend_LinksToPreviousEntry() {
	entries := suite.appendN("7", 3)

	for i := 1; i < len(entries); i++ {
		suite.Require().NotNil(entries[i].PreviousHash)
		suite.Equal(entries[i-1].DataHash, *entries[i].PreviousHash)
		suite.Equal(int64(i+1), entries[i].Sequence)
		suite.Equal(sha256Hex(entries[i-1].ChainHash+entries[i].DataHash), entries[i].ChainHash)
	}
}

func (suite *AuditChainServiceTestSuite) TestAppend_ChainsAreIndependentPerEntity() {
	suite.appendN("1", 2)
	other := suite.appendN("2", 1)

	suite.Nil(other[0].PreviousHash)
	suite.Equal(int64(1), other[0].Sequence)
}

func (suite *AuditChainServiceTestSuite) TestAppend_RequiresIdentity() {
	_, err := suite.service.Append(context.Background(), "", "1", "create", nil)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AuditChainServiceTestSuite) TestVerifyChain_Empty() {
	res, err := suite.service.VerifyChain(context.Background(), "invoice", "404")

	suite.Require().NoError(err)
	suite.True(res.Valid)
	suite.Equal("No entries to verify", res.Message)
	suite.Equal(-1, res.BrokenAt)
}

func (suite *AuditChainServiceTestSuite) TestVerifyChain_SingleEntry() {
	suite.appendN("1", 1)

	res, err := suite.service.VerifyChain(context.Background(), "invoice", "1")

	suite.Require().NoError(err)
	suite.True(res.Valid)
	suite.Equal("Single entry chain is valid", res.Message)
}

func (suite *AuditChainServiceTestSuite) TestVerifyChain_GenesisWithPreviousHash() {
	suite.appendN("1", 1)
	suite.repo.tamper("invoice", "1", 0, func(e *domain.AuditEntry) { e.PreviousHash = strPtr("abc") })

	res, err := suite.service.VerifyChain(context.Background(), "invoice", "1")

	suite.Require().NoError(err)
	suite.False(res.Valid)
	suite.Equal("First entry should not have previous_hash", res.Message)
	suite.Equal(0, res.BrokenAt)
}

func (suite *AuditChainServiceTestSuite) TestVerifyChain_Intact() {
	suite.appendN("1", 4)

	res, err := suite.service.VerifyChain(context.Background(), "invoice", "1")

	suite.Require().NoError(err)
	suite.True(res.Valid)
	suite.Equal("Chain integrity verified", res.Message)
	suite.Equal(4, res.EntriesChecked)
}

func (suite *AuditChainServiceTestSuite) TestVerifyChain_DetectsTampering() {
	cases := []struct {
		name    string
		edit    func(e *domain.AuditEntry)
		message string
	}{
		{"relinked", func(e *domain.AuditEntry) { e.PreviousHash = strPtr("0000") }, "Chain broken at entry 2: previous_hash mismatch"},
		{"snapshot edited", func(e *domain.AuditEntry) { e.Snapshot = `{"step":99}` }, "Chain broken at entry 2: data_hash mismatch"},
		{"chain hash forged", func(e *domain.AuditEntry) { e.ChainHash = sha256Hex("forged") }, "Chain broken at entry 2: chain_hash mismatch"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.appendN("1", 4)
			suite.repo.tamper("invoice", "1", 2, tc.edit)

			res, err := suite.service.VerifyChain(context.Background(), "invoice", "1")

			suite.Require().NoError(err)
			suite.False(res.Valid)
			suite.Equal(tc.message, res.Message)
			suite.Equal(2, res.BrokenAt)
		})
	}
}

func (suite *AuditChainServiceTestSuite) TestVerifyChain_DetectsGenesisTampering() {
	cases := []struct {
		name    string
		edit    func(e *domain.AuditEntry)
		message string
	}{
		{"snapshot edited", func(e *domain.AuditEntry) { e.Snapshot = `{"total":999999}` }, "Chain broken at entry 0: data_hash mismatch"},
		{"chain hash forged", func(e *domain.AuditEntry) { e.ChainHash = sha256Hex("forged") }, "Chain broken at entry 0: chain_hash mismatch"},
	}
	for _, tc := range cases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.appendN("1", 2)
			suite.repo.tamper("invoice", "1", 0, tc.edit)

			res, err := suite.service.VerifyChain(context.Background(), "invoice", "1")

			suite.Require().NoError(err)
			suite.False(res.Valid)
			suite.Equal(tc.message, res.Message)
			suite.Equal(0, res.BrokenAt)
			suite.Equal(1, res.EntriesChecked)
		})
	}
}

func (suite *AuditChainServiceTestSuite) TestVerifyChain_SingleEntryIsNotRehashed() {
	suite.appendN("1", 1)
	suite.repo.tamper("invoice", "1", 0, func(e *domain.AuditEntry) { e.Snapshot = `{"step":42}` })

	res, err := suite.service.VerifyChain(context.Background(), "invoice", "1")

	suite.Require().NoError(err)
	suite.True(res.Valid)
	suite.Equal("Single entry chain is valid", res.Message)
}

func (suite *AuditChainServiceTestSuite) TestExportProof() {
	entries := suite.appendN("1", 3)

	proof, err := suite.service.ExportProof(context.Background(), "invoice", "1", entries[1].ID)

	suite.Require().NoError(err)
	suite.Equal(entries[1].DataHash, proof.DataHash)
	suite.Equal(entries[1].ChainHash, proof.ChainHash)
	suite.Equal(entries[0].DataHash, *proof.PreviousHash)
	suite.Equal(2, proof.EntryPosition)
	suite.Equal(3, proof.TotalEntriesInChain)
	suite.True(proof.ChainIsValid)
	suite.Equal("Chain integrity verified", proof.ChainMessage)
}

func (suite *AuditChainServiceTestSuite) TestExportProof_EntryFromOtherChain() {
	suite.appendN("1", 1)
	other := suite.appendN("2", 1)

	_, err := suite.service.ExportProof(context.Background(), "invoice", "1", other[0].ID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}
