package wellness

// Dimension 表示七个固定的健康维度
// 维度集合在编译期确定，AllDimensions 的声明顺序是全局唯一的
// 确定性排序依据（推荐维度、最少练习维度等平局时按此顺序取先者）
type Dimension string

const (
	DimensionPhysical      Dimension = "physical"
	DimensionEmotional     Dimension = "emotional"
	DimensionMental        Dimension = "mental"
	DimensionSocial        Dimension = "social"
	DimensionSpiritual     Dimension = "spiritual"
	DimensionProfessional  Dimension = "professional"
	DimensionEnvironmental Dimension = "environmental"
)

// AllDimensions 按声明顺序列出全部维度
var AllDimensions = []Dimension{
	DimensionPhysical,
	DimensionEmotional,
	DimensionMental,
	DimensionSocial,
	DimensionSpiritual,
	DimensionProfessional,
	DimensionEnvironmental,
}

// DimensionInfo 描述一个维度的静态文案与基础行动
// 纯数据，无任何状态
type DimensionInfo struct {
	DisplayName       string
	IdentityStatement string
	BaseMicroAction   string
	ChecklistSteps    []string
}

var dimensionCatalog = map[Dimension]DimensionInfo{
	DimensionPhysical: {
		DisplayName:       "身体",
		IdentityStatement: "我是一个珍惜身体、坚持活动的人",
		BaseMicroAction:   "起身活动两分钟",
		ChecklistSteps:    []string{"放下手头的事", "站起来伸展", "做十次深蹲或原地走动"},
	},
	DimensionEmotional: {
		DisplayName:       "情绪",
		IdentityStatement: "我是一个能觉察并接纳情绪的人",
		BaseMicroAction:   "写下此刻的三种感受",
		ChecklistSteps:    []string{"找一个安静角落", "闭眼深呼吸三次", "写下感受并命名它们"},
	},
	DimensionMental: {
		DisplayName:       "心智",
		IdentityStatement: "我是一个持续学习、保持好奇的人",
		BaseMicroAction:   "阅读一页书或一篇短文",
		ChecklistSteps:    []string{"挑一段想读的内容", "专注读完", "用一句话记录收获"},
	},
	DimensionSocial: {
		DisplayName:       "社交",
		IdentityStatement: "我是一个主动维系关系的人",
		BaseMicroAction:   "给一位朋友发一条问候",
		ChecklistSteps:    []string{"想起一位久未联系的人", "写一句真诚的问候", "发送出去"},
	},
	DimensionSpiritual: {
		DisplayName:       "心灵",
		IdentityStatement: "我是一个内心安定、心怀感恩的人",
		BaseMicroAction:   "静坐一分钟并记录一件感恩的事",
		ChecklistSteps:    []string{"坐直放松", "关注呼吸一分钟", "写下一件今天感恩的事"},
	},
	DimensionProfessional: {
		DisplayName:       "职业",
		IdentityStatement: "我是一个对工作有掌控感的人",
		BaseMicroAction:   "整理明天最重要的一件事",
		ChecklistSteps:    []string{"回顾今天的进展", "写下明天最重要的一件事", "预估需要的时间"},
	},
	DimensionEnvironmental: {
		DisplayName:       "环境",
		IdentityStatement: "我是一个善待周围环境的人",
		BaseMicroAction:   "整理桌面上的一小块区域",
		ChecklistSteps:    []string{"选定一小块区域", "清走不需要的物品", "把留下的摆放整齐"},
	},
}

// Info 返回维度的静态元数据；未知维度返回零值
func (d Dimension) Info() DimensionInfo {
	return dimensionCatalog[d]
}

// Valid 判断字符串是否为合法维度
func (d Dimension) Valid() bool {
	_, ok := dimensionCatalog[d]
	return ok
}
