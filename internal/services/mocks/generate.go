package mocks

//go:generate go run github.com/golang/mock/mockgen -destination=mock_lesson_progress_store.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services LessonProgressStore
//go:generate go run github.com/golang/mock/mockgen -destination=mock_lesson_lookup.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services LessonLookup
//go:generate go run github.com/golang/mock/mockgen -destination=mock_course_progress_updater.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services CourseProgressUpdater
//go:generate go run github.com/golang/mock/mockgen -destination=mock_outbox_enqueuer.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services OutboxEnqueuer
//go:generate go run github.com/golang/mock/mockgen -destination=mock_lesson_projection_repository.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services LessonProjectionRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_lesson_cache.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services LessonCache
//go:generate go run github.com/golang/mock/mockgen -destination=mock_course_progress_repository.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services CourseProgressRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_lesson_content_repository.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services LessonContentRepository
//go:generate go run github.com/golang/mock/mockgen -destination=mock_lesson_progress_service.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services LessonProgressServiceInterface
//go:generate go run github.com/golang/mock/mockgen -destination=mock_lesson_detail_service.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services LessonDetailServiceInterface
//go:generate go run github.com/golang/mock/mockgen -destination=mock_course_progress_service.go -package=mocks github.com/bionicotaku/lingo-services-progress/internal/services CourseProgressServiceInterface
