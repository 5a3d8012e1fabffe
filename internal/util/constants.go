package util

const TimeFormat = "2006-01-02 15:04:05"

const (
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

const (
	MimePDF = "application/pdf"
)

// MaxResumeSize 简历 PDF 上传上限 5MB
const MaxResumeSize = 5 << 20
