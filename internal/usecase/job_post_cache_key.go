package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"

	"job-board/internal/domain/jobpost"
)

const (
	jobPostCachePrefix = "job_posts:"
	// JobPostCachePattern matches every cached job post read.
	JobPostCachePattern = jobPostCachePrefix + "*"
)

type jobPostListKeyInput struct {
	EmployerProfileID int64 `json:"employer_profile_id"`
	ActiveOnly        bool  `json:"active_only"`
}

func JobPostListCacheKey(f jobpost.Filter) string {
	b, _ := json.Marshal(jobPostListKeyInput{EmployerProfileID: f.EmployerProfileID, ActiveOnly: f.ActiveOnly})
	sum := sha256.Sum256(b)
	return jobPostCachePrefix + "list:" + hex.EncodeToString(sum[:])
}

func JobPostCacheKey(id int64) string {
	return jobPostCachePrefix + "id:" + strconv.FormatInt(id, 10)
}
