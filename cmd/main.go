package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/shamshad-ansari/fitpro-backend/config"
	"github.com/shamshad-ansari/fitpro-backend/routes"
	"github.com/shamshad-ansari/fitpro-backend/utils"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg)

	ctx := context.Background()

	client, err := config.ConnectMongo(ctx, cfg.MongoURI)
	if err != nil {
		logrus.Fatalf("mongo connect: %v", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			logrus.Errorf("mongo disconnect: %v", err)
		}
	}()

	if err := config.EnsureIndexes(ctx, client.Database(cfg.MongoDatabase)); err != nil {
		logrus.Fatalf("ensure indexes: %v", err)
	}

	var uploader *utils.S3Uploader
	if cfg.S3Bucket != "" {
		uploader, err = utils.NewS3Uploader(ctx, cfg.AWSRegion, cfg.S3Bucket)
		if err != nil {
			logrus.Fatalf("init S3 uploader: %v", err)
		}
	}

	r := routes.SetupRouter(cfg, client, uploader)

	logrus.Infof("server listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server stopped: %v", err)
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.LogJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
