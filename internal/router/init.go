package router

import (
	"github.com/devforum/backend/internal/application"
	"github.com/devforum/backend/internal/container"
	pginfra "github.com/devforum/backend/internal/infrastructure/postgres"
	handlers "github.com/devforum/backend/internal/interface/http"
	"github.com/devforum/backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	users := pginfra.NewUserRepository(pool)
	questions := pginfra.NewQuestionRepository(pool)
	answers := pginfra.NewAnswerRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	images := pginfra.NewImageRepository(pool)
	txRunner := pginfra.NewRunner(pool)

	authSvc := application.NewAuthService(users, images, jwt, container.GetGCS(), cfg.GCSBucket, logger)
	questionSvc := application.NewQuestionService(questions, answers, users, logger, container.GetES(), cfg.ESQuestionsIndex)
	answerSvc := application.NewAnswerService(answers, questions, users, container.GetRabbitPub(), logger)
	voteSvc := application.NewVoteService(users, answers, txRunner, logger)
	commentSvc := application.NewCommentService(comments, questions, answers, users)
	notifSvc := application.NewNotificationService(users, container.GetRedis(), logger)
	userSvc := application.NewUserService(users, logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger), jwt))
	r.Add(modules.NewQuestionModule(handlers.NewQuestionHandler(questionSvc, logger), jwt))
	r.Add(modules.NewAnswerModule(handlers.NewAnswerHandler(answerSvc, voteSvc, logger), jwt))
	r.Add(modules.NewCommentModule(handlers.NewCommentHandler(commentSvc), jwt))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, notifSvc, logger), jwt))
	r.Add(modules.NewDebugModule(cfg.DebugMetricsEnabled))
}
