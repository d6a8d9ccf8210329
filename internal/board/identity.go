package board

import (
	"sort"
	"strings"

	"tablero/internal/decoder"
	"tablero/internal/model"
)

// DiscoverUniverse 从表格中提取本次上传出现的全部场所键
// 身份列（名称/分店地址）缺失时返回 ok=false，调用方应告警且不更新已知集合
func DiscoverUniverse(tbl *decoder.Table) (keys []string, ok bool) {
	if len(tbl.MissingColumns(model.IdentityColumns)) > 0 {
		return nil, false
	}

	seen := make(map[string]struct{})
	for i := 0; i < tbl.Len(); i++ {
		// 与记录提取同样做去空白，保证键一致
		name := strings.TrimSpace(tbl.Cell(i, model.ColName))
		branch := strings.TrimSpace(tbl.Cell(i, model.ColBranch))
		if name == "" && branch == "" {
			continue
		}
		seen[model.MakeKey(name, branch)] = struct{}{}
	}

	keys = make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, true
}

// MergeUniverse 并集合并，输出排序保证展示顺序稳定
// 只增不减：已知场所跨多次上传累积
func MergeUniverse(existing, discovered []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(discovered))
	for _, k := range existing {
		seen[k] = struct{}{}
	}
	for _, k := range discovered {
		seen[k] = struct{}{}
	}

	merged := make([]string, 0, len(seen))
	for k := range seen {
		merged = append(merged, k)
	}
	sort.Strings(merged)
	return merged
}
