package store

import (
	"encoding/json"
	"time"

	"github.com/wellnesslog/internal/db"
	"github.com/wellnesslog/internal/wellness"
)

// DailyCheckin 记录某个自然日的签到状态
// 日期经 JSON/RFC3339 往返，加载时按本地自然日过滤
type DailyCheckin struct {
	Date       time.Time            `json:"date"`
	Dimensions []wellness.Dimension `json:"dimensions"`
}

// Repository 在 KV 之上提供各状态对象的类型化读写
// 任何解码失败都按"不存在"处理并回退默认值，绝不上抛给用户
type Repository struct {
	kv KV
}

// NewRepository 构造 Repository
func NewRepository(kv KV) *Repository {
	return &Repository{kv: kv}
}

// SaveProfile 整体写入用户档案
func (r *Repository) SaveProfile(p *wellness.UserProfile) error {
	return r.saveJSON(db.StateKeyUserProfile, p)
}

// LoadProfile 读取用户档案，缺失或解码失败时返回全新空档案
func (r *Repository) LoadProfile() *wellness.UserProfile {
	profile := wellness.NewUserProfile()
	if !r.loadJSON(db.StateKeyUserProfile, profile) {
		return wellness.NewUserProfile()
	}
	// 反序列化可能留下 nil 容器，补齐以维持惰性创建的约定
	if profile.Identities == nil {
		profile.Identities = map[wellness.Dimension]*wellness.Identity{}
	}
	if profile.SelectedWellnessFocus == nil {
		profile.SelectedWellnessFocus = []wellness.Dimension{}
	}
	if profile.TodaysDimensionCompleted == nil {
		profile.TodaysDimensionCompleted = []wellness.Dimension{}
	}
	return profile
}

// SaveAssessment 写入最近一次评估
func (r *Repository) SaveAssessment(a *wellness.WellnessAssessment) error {
	return r.saveJSON(db.StateKeyAssessment, a)
}

// LoadAssessment 读取评估，缺失或解码失败时返回 nil
func (r *Repository) LoadAssessment() *wellness.WellnessAssessment {
	var assessment wellness.WellnessAssessment
	if !r.loadJSON(db.StateKeyAssessment, &assessment) {
		return nil
	}
	return &assessment
}

// SaveJourney 写入当前旅程
func (r *Repository) SaveJourney(j *wellness.WellnessJourney) error {
	return r.saveJSON(db.StateKeyJourney, j)
}

// LoadJourney 读取旅程，缺失或解码失败时返回 nil
func (r *Repository) LoadJourney() *wellness.WellnessJourney {
	var journey wellness.WellnessJourney
	if !r.loadJSON(db.StateKeyJourney, &journey) {
		return nil
	}
	return &journey
}

// SaveDailyCheckin 写入当日签到记录
func (r *Repository) SaveDailyCheckin(checkin DailyCheckin) error {
	return r.saveJSON(db.StateKeyDailyCheckin, checkin)
}

// LoadDailyCheckin 读取签到记录并按"是否今天"过滤
// 非今天的记录视作不存在
func (r *Repository) LoadDailyCheckin(today time.Time) (DailyCheckin, bool) {
	var checkin DailyCheckin
	if !r.loadJSON(db.StateKeyDailyCheckin, &checkin) {
		return DailyCheckin{}, false
	}
	if !wellness.SameDay(checkin.Date.Local(), today) {
		return DailyCheckin{}, false
	}
	return checkin, true
}

func (r *Repository) saveJSON(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.kv.Save(key, raw)
}

// loadJSON 返回是否成功加载；键缺失、读取失败与解码失败一律为 false
func (r *Repository) loadJSON(key string, dst any) bool {
	raw, ok, err := r.kv.Load(key)
	if err != nil || !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}
