package model

// Status 咨询处理状态
type Status string

const (
    StatusUnread    Status = "unread"
    StatusProcessed Status = "processed"
    StatusReplied   Status = "replied"
)

// replied 为终态：回复只增不减，状态不允许回退
var validNext = map[Status]map[Status]bool{
    StatusUnread:    {StatusProcessed: true, StatusReplied: true},
    StatusProcessed: {StatusUnread: true, StatusReplied: true},
    StatusReplied:   {},
}

// CanTransition 判断状态迁移是否合法（原状态保持视为合法，标记操作幂等）
func CanTransition(from, to Status) bool {
    if from == to {
        return true
    }
    return validNext[from][to]
}

// Valid 是否为已知状态值
func (s Status) Valid() bool {
    switch s {
    case StatusUnread, StatusProcessed, StatusReplied:
        return true
    }
    return false
}

// Label 导出/展示用标签
func (s Status) Label() string {
    switch s {
    case StatusProcessed:
        return "Processed"
    case StatusReplied:
        return "Replied"
    default:
        return "Unread"
    }
}
