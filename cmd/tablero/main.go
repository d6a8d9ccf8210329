package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"tablero/internal/config"
	"tablero/internal/server"
	"tablero/internal/util"
)

var (
	port        = flag.Int("port", 0, "puerto del servicio (config.toml tiene prioridad si declara port)")
	devMode     = flag.Bool("dev", false, "modo desarrollo")
	dataDir     = flag.String("dataDir", "", "directorio de datos (sobrescribe la configuración)")
	goalsDriver = flag.String("goals", "", "almacén de metas: sqlite | mongo | redis | memory")
)

func main() {
	flag.Parse()

	// .env 先于配置加载，变量缺失不算错误
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	fmt.Println("==========================================")
	fmt.Println("  Tablero - Gestión y Análisis de Reservas")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.WithError(err).Warn("no se pudo cargar la configuración, se usan valores por defecto")
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// 命令行参数覆盖配置
	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}
	if *goalsDriver != "" {
		cfg.Goals.Driver = *goalsDriver
	}

	if cfg.Server.DevMode {
		log.SetLevel(logrus.DebugLevel)
	}

	srv := server.NewServer(cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		log.WithField("addr", addr).Info("servicio iniciando")
		if err := srv.Run(addr); err != nil {
			log.WithError(err).Fatal("el servicio no pudo iniciarse")
		}
	}()

	if !cfg.Server.DevMode {
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("No se pudo abrir el navegador, visita manualmente: %s\n", url)
		}
	} else {
		fmt.Printf("Modo desarrollo: visita %s\n", url)
	}

	fmt.Println("\nPresiona Ctrl+C para detener el servicio...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nDeteniendo el servicio...")
	if err := srv.Close(); err != nil {
		log.WithError(err).Warn("error al cerrar el almacén de metas")
	}
}
