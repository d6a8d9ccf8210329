package model

import "time"

// 上传文件中看板所需的列名
const (
	ColStatus  = "status"
	ColName    = "establishment_name"
	ColBranch  = "establishment_branch_address"
	ColDate    = "meta_reservation_date"
	ColPersons = "meta_reservation_persons"
)

// DashboardColumns 渲染看板必需的全部列
var DashboardColumns = []string{ColStatus, ColName, ColBranch, ColDate, ColPersons}

// IdentityColumns 建立建档所需的列（缺失时仅告警，不阻止上传预览）
var IdentityColumns = []string{ColName, ColBranch}

// StatusAssigned 进入看板统计的预订状态（区分大小写精确匹配）
const StatusAssigned = "Asignado"

// ReservationRecord 一行预订记录，解析后不可变
// Date 为 nil 表示原始日期无法解析，该行不参与 7 天聚合
type ReservationRecord struct {
	Status    string
	Name      string
	Branch    string
	Date      *time.Time
	PartySize int
}

// Key 记录所属的场所复合键
func (r *ReservationRecord) Key() string {
	return MakeKey(r.Name, r.Branch)
}

// MakeKey 生成场所复合键: "{name} - {branch}"
func MakeKey(name, branch string) string {
	return name + " - " + branch
}
