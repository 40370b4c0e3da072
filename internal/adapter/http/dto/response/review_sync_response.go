package response

import "buhuchet_site/internal/usecase"

type SyncResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
	Total    int `json:"total"`
}

type ResetResponse struct {
	Deleted  int `json:"deleted"`
	Imported int `json:"imported"`
	Seeded   int `json:"seeded"`
	Total    int `json:"total"`
}

func FromSyncResult(r usecase.SyncResult) SyncResponse {
	return SyncResponse{Imported: r.Imported, Skipped: r.Skipped, Total: r.Total}
}

func FromResetResult(r usecase.ResetResult) ResetResponse {
	return ResetResponse{Deleted: r.Deleted, Imported: r.Imported, Seeded: r.Seeded, Total: r.Total}
}
