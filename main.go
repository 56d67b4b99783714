package main

import (
	"net/http"
	"os"

	"github.com/prasetiyohadi/go-gamestore/app/cmd"
	"github.com/prasetiyohadi/go-gamestore/app/configs"
	"github.com/prasetiyohadi/go-gamestore/app/routes"
	"github.com/sirupsen/logrus"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	db, err := configs.OpenConnection()
	if err != nil {
		logrus.Fatalf("DB connection failed: %v", err)
	}
	logrus.Info("✅ Database connected.")

	router, err := routes.NewRouter(db)
	if err != nil {
		logrus.Fatalf("Failed to build router: %v", err)
	}

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	logrus.Infof("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		logrus.Errorf("server stopped: %v", err)
	}
}
