/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"dirpx.dev/coderr/adapter"
	"dirpx.dev/coderr/apis"
	"dirpx.dev/coderr/config"
	"dirpx.dev/coderr/grpcx"
	"dirpx.dev/coderr/internal/server"
	"dirpx.dev/coderr/logx"
	"dirpx.dev/coderr/mapper"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var (
		opts     config.LoadOptions
		tomlPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the registry HTTP service",
		Long: `Serve the registry over HTTP and, when grpc.enabled is set, a gRPC
health endpoint whose errors pass through the same mapper.

Configuration is read from config_<env>.yaml in --config-dir, then from
CODERR_* environment variables. --toml loads a legacy TOML file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				cfg *config.Config
				err error
			)
			if tomlPath != "" {
				cfg, err = config.LoadTOML(tomlPath)
			} else {
				cfg, err = config.Load(opts)
			}
			if err != nil {
				logx.WithError(logrus.StandardLogger(), err).Error("load configuration")
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config-dir", "./configs", "Directory holding config_<env>.yaml")
	cmd.Flags().StringVar(&opts.Env, "env", "", "Environment name (default $APP_ENV or dev)")
	cmd.Flags().StringVar(&opts.EnvFile, "env-file", "", "dotenv file (default $ENV_FILE or .env)")
	cmd.Flags().StringVar(&opts.EnvPrefix, "env-prefix", "CODERR", "Prefix of overriding environment variables")
	cmd.Flags().BoolVar(&opts.AllowNoConfig, "allow-no-config", false, "Run on defaults when the config file is missing")
	cmd.Flags().StringVar(&tomlPath, "toml", "", "Load a legacy TOML configuration file")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	log := logrus.StandardLogger()
	closer, err := logx.Init(cfg.Log, logx.Options{Logger: log, Service: cfg.App.Name})
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	m, err := mapper.New()
	if err != nil {
		return err
	}
	l := adapter.Default()

	srv, err := server.New(cfg.HTTP, m, l, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 2)
	go func() {
		log.WithField("addr", srv.Addr()).Info("http server listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http: %w", err)
		}
	}()

	var gs *grpc.Server
	if cfg.GRPC.Enabled {
		gs, err = startGRPC(cfg.GRPC.Addr, l, m, log, errCh)
		if err != nil {
			_ = srv.Shutdown(context.Background())
			return err
		}
	}

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
		logx.WithError(log, err).Error("server failed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if gs != nil {
		gs.GracefulStop()
	}
	if sErr := srv.Shutdown(shutdownCtx); sErr != nil && err == nil {
		err = sErr
	}
	return err
}

func startGRPC(addr string, l *adapter.Lifter, m apis.Mapper, log *logrus.Logger, errCh chan<- error) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("grpc: listen %s: %w", addr, err)
	}

	gs := grpc.NewServer(
		grpc.ChainUnaryInterceptor(grpcx.UnaryServerInterceptor(l, m)),
		grpc.ChainStreamInterceptor(grpcx.StreamServerInterceptor(l, m)),
	)
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(gs, hs)

	go func() {
		log.WithField("addr", addr).Info("grpc server listening")
		if err := gs.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errCh <- fmt.Errorf("grpc: %w", err)
		}
	}()
	return gs, nil
}
