// Package status 定義應徵狀態與允許的轉換。
//
//	Pending ──► Shortlisted ──► Accepted
//	   │             │
//	   │             └─────────► Rejected
//	   ├───────────────────────► Accepted
//	   └───────────────────────► Rejected
//
// Accepted 與 Rejected 為終態。
package status

import "fmt"

type Status string

const (
	Pending     Status = "Pending"
	Shortlisted Status = "Shortlisted"
	Accepted    Status = "Accepted"
	Rejected    Status = "Rejected"
)

// All 依審核流程排序
var All = []Status{Pending, Shortlisted, Accepted, Rejected}

var transitions = map[Status][]Status{
	Pending:     {Shortlisted, Accepted, Rejected},
	Shortlisted: {Accepted, Rejected},
}

// Parse 將字串轉為 Status，未知值回傳錯誤（大小寫需完全一致）
func Parse(s string) (Status, error) {
	for _, st := range All {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// CanTransition 回報 from → to 是否允許。相同狀態視為允許（no-op）。
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal 終態沒有任何外出轉換
func IsTerminal(s Status) bool {
	_, ok := transitions[s]
	return !ok
}
