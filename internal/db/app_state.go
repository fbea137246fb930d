package db

import "gorm.io/gorm"

// AppState 以键值对形式存储核心引擎托管的状态快照。
// Value 为 JSON 序列化后的文本，解码失败按"不存在"处理。
type AppState struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName 自定义表名以保持命名一致。
func (AppState) TableName() string {
	return "app_states"
}

const (
	// StateKeyUserProfile 表示用户档案。
	StateKeyUserProfile = "user_profile"
	// StateKeyAssessment 表示最近一次健康评估。
	StateKeyAssessment = "wellness_assessment"
	// StateKeyJourney 表示当前旅程。
	StateKeyJourney = "wellness_journey"
	// StateKeyDailyCheckin 表示今日签到记录。
	StateKeyDailyCheckin = "daily_checkin"
)
