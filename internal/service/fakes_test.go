package service

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"dmg-assess/internal/models"
	apperr "dmg-assess/pkg/errors"

	"github.com/sirupsen/logrus"
)

// ═══════════════════════════════════════════════════════════
// 内存版存储，只实现测试用到的行为
// ═══════════════════════════════════════════════════════════

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func notFound(what string, id uint) error {
	return fmt.Errorf("%s %d: %w", what, id, apperr.ErrNotFound)
}

// ── 场景 ──

type fakeSceneStore struct {
	mu     sync.Mutex
	rows   map[uint]models.DamageScene
	nextID uint
	addErr error
}

func newFakeSceneStore() *fakeSceneStore {
	return &fakeSceneStore{rows: make(map[uint]models.DamageScene)}
}

func (f *fakeSceneStore) duplicated(s *models.DamageScene) bool {
	for id, row := range f.rows {
		if id != s.DSID && row.Active() && (row.DSCode == s.DSCode || row.DSName == s.DSName) {
			return true
		}
	}
	return false
}

func (f *fakeSceneStore) Add(_ context.Context, s *models.DamageScene) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return 0, f.addErr
	}
	if f.duplicated(s) {
		return 0, apperr.ErrDuplicateKey
	}
	f.nextID++
	s.DSID = f.nextID
	s.DSStatus = models.StatusActive
	f.rows[s.DSID] = *s
	return s.DSID, nil
}

func (f *fakeSceneStore) Update(_ context.Context, s *models.DamageScene) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[s.DSID]
	if !ok {
		return false, nil
	}
	if f.duplicated(s) {
		return false, apperr.ErrDuplicateKey
	}
	s.DSStatus = row.DSStatus
	f.rows[s.DSID] = *s
	return true, nil
}

func (f *fakeSceneStore) Delete(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return false, nil
	}
	row.DSStatus = models.StatusDeleted
	f.rows[id] = row
	return true, nil
}

func (f *fakeSceneStore) GetByID(_ context.Context, id uint) (*models.DamageScene, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, notFound("场景", id)
	}
	return &row, nil
}

func (f *fakeSceneStore) GetAll(_ context.Context) ([]models.DamageScene, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DamageScene
	for _, row := range f.rows {
		if row.Active() {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DSID > out[j].DSID })
	return out, nil
}

func (f *fakeSceneStore) Search(ctx context.Context, _ string) ([]models.DamageScene, error) {
	return f.GetAll(ctx)
}

// ── 参数 ──

type fakeParameterStore struct {
	mu     sync.Mutex
	rows   map[uint]models.DamageParameter
	nextID uint
}

func newFakeParameterStore() *fakeParameterStore {
	return &fakeParameterStore{rows: make(map[uint]models.DamageParameter)}
}

func (f *fakeParameterStore) Add(_ context.Context, p *models.DamageParameter) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	p.DPID = f.nextID
	p.DPStatus = models.StatusActive
	f.rows[p.DPID] = *p
	return p.DPID, nil
}

func (f *fakeParameterStore) Update(_ context.Context, p *models.DamageParameter) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[p.DPID]
	if !ok {
		return false, nil
	}
	p.DPStatus = row.DPStatus
	f.rows[p.DPID] = *p
	return true, nil
}

func (f *fakeParameterStore) Delete(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return false, nil
	}
	row.DPStatus = models.StatusDeleted
	f.rows[id] = row
	return true, nil
}

func (f *fakeParameterStore) GetByID(_ context.Context, id uint) (*models.DamageParameter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, notFound("参数", id)
	}
	return &row, nil
}

func (f *fakeParameterStore) GetAll(_ context.Context) ([]models.DamageParameter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.DamageParameter
	for _, row := range f.rows {
		if row.Active() {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DPID > out[j].DPID })
	return out, nil
}

func (f *fakeParameterStore) Search(ctx context.Context, _ string) ([]models.DamageParameter, error) {
	return f.GetAll(ctx)
}

func (f *fakeParameterStore) GetBySceneID(ctx context.Context, dsid uint) ([]models.DamageParameter, error) {
	all, _ := f.GetAll(ctx)
	var out []models.DamageParameter
	for _, row := range all {
		if row.DSID == dsid {
			out = append(out, row)
		}
	}
	return out, nil
}

// ── 评估结果 ──

type fakeResultStore struct {
	mu     sync.Mutex
	rows   map[uint]models.AssessmentResult
	nextID uint
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{rows: make(map[uint]models.AssessmentResult)}
}

func (f *fakeResultStore) Add(_ context.Context, r *models.AssessmentResult) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	r.DAID = f.nextID
	f.rows[r.DAID] = *r
	return r.DAID, nil
}

func (f *fakeResultStore) Update(_ context.Context, r *models.AssessmentResult) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[r.DAID]; !ok {
		return false, nil
	}
	f.rows[r.DAID] = *r
	return true, nil
}

func (f *fakeResultStore) Delete(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeResultStore) GetByID(_ context.Context, id uint) (*models.AssessmentResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, notFound("评估结果", id)
	}
	return &row, nil
}

func (f *fakeResultStore) GetAll(_ context.Context) ([]models.AssessmentResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AssessmentResult
	for _, row := range f.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DAID > out[j].DAID })
	return out, nil
}

func (f *fakeResultStore) Search(ctx context.Context, _ string) ([]models.AssessmentResult, error) {
	return f.GetAll(ctx)
}

func (f *fakeResultStore) GetBySceneID(ctx context.Context, dsid uint) ([]models.AssessmentResult, error) {
	all, _ := f.GetAll(ctx)
	var out []models.AssessmentResult
	for _, row := range all {
		if row.DSID == dsid {
			out = append(out, row)
		}
	}
	return out, nil
}

// ── 报告 ──

type fakeReportStore struct {
	mu     sync.Mutex
	rows   map[uint]models.AssessmentReport
	nextID uint
}

func newFakeReportStore() *fakeReportStore {
	return &fakeReportStore{rows: make(map[uint]models.AssessmentReport)}
}

func (f *fakeReportStore) Add(_ context.Context, r *models.AssessmentReport) (uint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	r.ReportID = f.nextID
	f.rows[r.ReportID] = *r
	return r.ReportID, nil
}

func (f *fakeReportStore) Update(_ context.Context, r *models.AssessmentReport) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[r.ReportID]; !ok {
		return false, nil
	}
	f.rows[r.ReportID] = *r
	return true, nil
}

func (f *fakeReportStore) Delete(_ context.Context, id uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

func (f *fakeReportStore) GetByID(_ context.Context, id uint) (*models.AssessmentReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, notFound("报告", id)
	}
	return &row, nil
}

func (f *fakeReportStore) GetAll(_ context.Context) ([]models.AssessmentReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AssessmentReport
	for _, row := range f.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ReportID > out[j].ReportID })
	return out, nil
}

func (f *fakeReportStore) Search(ctx context.Context, _ string) ([]models.AssessmentReport, error) {
	return f.GetAll(ctx)
}

// ── 外部子系统 ──

type fakeMasterData struct {
	ammo     map[uint]*models.Ammunition
	runways  map[uint]*models.AirportRunway
	shelters map[uint]*models.AircraftShelter
	posts    map[uint]*models.UndergroundCommandPost
}

func newFakeMasterData() *fakeMasterData {
	cn := "激光制导炸弹"
	return &fakeMasterData{
		ammo: map[uint]*models.Ammunition{
			7: {AMID: 7, AMName: "LGB-500", AMNameCN: &cn},
		},
		runways: map[uint]*models.AirportRunway{
			3: {RunwayID: 3, RunwayCode: "RW-03", RunwayName: "主跑道"},
		},
		shelters: map[uint]*models.AircraftShelter{
			4: {ShelterID: 4, ShelterCode: "SH-04", ShelterName: "4号机库"},
		},
		posts: map[uint]*models.UndergroundCommandPost{
			5: {UCCID: 5, UCCCode: "UCC-05", UCCName: "地下指挥所甲"},
		},
	}
}

func (f *fakeMasterData) GetByID(_ context.Context, id uint) (*models.Ammunition, error) {
	if a, ok := f.ammo[id]; ok {
		return a, nil
	}
	return nil, notFound("弹药", id)
}

func (f *fakeMasterData) GetRunway(_ context.Context, id uint) (*models.AirportRunway, error) {
	if r, ok := f.runways[id]; ok {
		return r, nil
	}
	return nil, notFound("跑道", id)
}

func (f *fakeMasterData) GetShelter(_ context.Context, id uint) (*models.AircraftShelter, error) {
	if s, ok := f.shelters[id]; ok {
		return s, nil
	}
	return nil, notFound("掩蔽库", id)
}

func (f *fakeMasterData) GetCommandPost(_ context.Context, id uint) (*models.UndergroundCommandPost, error) {
	if p, ok := f.posts[id]; ok {
		return p, nil
	}
	return nil, notFound("指挥所", id)
}

type fakeUserDirectory struct {
	users map[uint]*models.User
}

func (f *fakeUserDirectory) GetByID(_ context.Context, uid uint) (*models.User, error) {
	if u, ok := f.users[uid]; ok {
		return u, nil
	}
	return nil, notFound("用户", uid)
}

func (f *fakeUserDirectory) GetByUsername(_ context.Context, name string) (*models.User, error) {
	for _, u := range f.users {
		if u.UserName == name {
			return u, nil
		}
	}
	return nil, fmt.Errorf("用户 %s: %w", name, apperr.ErrNotFound)
}
