package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("Email already exists")
	ErrInvalidCredentials  = errors.New("Invalid email or password")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCourseNotFound      = errors.New("Course not found")
	ErrJobNotFound         = errors.New("Job not found")
	ErrAlreadyApplied      = errors.New("Already applied")
	ErrMentorNotFound      = errors.New("Mentor not found")
	ErrTestNotFound        = errors.New("Test not found")
	ErrLeaderboardConflict = errors.New("leaderboard is being updated concurrently, please retry")
	ErrChallengeNotFound   = errors.New("Challenge not found")
	ErrInternshipNotFound  = errors.New("Internship not found")
	ErrTaskNotFound        = errors.New("Task not found")
	ErrResumeNotFound      = errors.New("No resume found")
	ErrNotificationMissing = errors.New("Notification not found")
	ErrReviewTargetMissing = errors.New("reviewed item not found")
	ErrInvalidFileType     = errors.New("only PDF files are accepted")
	ErrFileTooLarge        = errors.New("file exceeds the 5MB limit")
	ErrInvalidResumeData   = errors.New("resume data must be valid JSON")
	ErrInvalidQuestion     = errors.New("every question needs at least two options and a correctIndex within range")
)
