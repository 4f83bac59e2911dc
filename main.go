package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/uber-go/tally"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/ceod-api/api"
	"github.com/bitmark-inc/ceod-api/consts"
	"github.com/bitmark-inc/ceod-api/logmodule"
	"github.com/bitmark-inc/ceod-api/report"
	"github.com/bitmark-inc/ceod-api/store"
	"github.com/bitmark-inc/ceod-api/utils"
)

var (
	server        *api.Server
	ceodStore     store.CeodStore
	metricsCloser io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("ceod")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("store.driver", consts.StoreDriverMongo)
	viper.SetDefault("mongo.pool", 10)
	viper.SetDefault("i18n.default_language", utils.DefaultLanguage)
	viper.SetDefault("report.timezone", consts.DefaultTimezone)
}

func openStore(ctx context.Context) (store.CeodStore, error) {
	switch driver := viper.GetString("store.driver"); driver {
	case consts.StoreDriverORM:
		ormDB, err := gorm.Open("postgres", viper.GetString("orm.conn"))
		if err != nil {
			return nil, err
		}
		return store.NewORMStore(ormDB), nil
	case consts.StoreDriverMongo:
		// initialise mongodb connections
		opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
		opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
		mongoClient, err := mongo.NewClient(opts)
		if nil != err {
			return nil, fmt.Errorf("create mongo client with error: %s", err)
		}

		if err := mongoClient.Connect(ctx); nil != err {
			return nil, fmt.Errorf("connect mongo database with error: %s", err)
		}
		return store.NewMongoStore(mongoClient, viper.GetString("mongo.database")), nil
	default:
		return nil, fmt.Errorf("unknown store driver: %s", driver)
	}
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if initialCtx != nil && cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
			<-initialCtx.Done()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ceodStore != nil {
			log.Info("Shutting down db store")
			ceodStore.Close()
		}

		if metricsCloser != nil {
			if err := metricsCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(5 * time.Second)
		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	if dir := viper.GetString("i18n.dir"); dir != "" {
		if err := utils.InitI18NBundle(dir); err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Infof("Loaded message files from %s", dir)
	}

	tz, err := utils.LoadLocation(viper.GetString("report.timezone"))
	if err != nil {
		log.Panic(err)
	}

	var scope tally.Scope
	scope, metricsCloser = tally.NewRootScope(tally.ScopeOptions{
		Prefix:   consts.MetricsPrefix,
		Reporter: logmodule.NewStatsReporter("metrics"),
	}, time.Minute)

	ceodStore, err = openStore(initialCtx)
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Infof("Initialized %s store", viper.GetString("store.driver"))

	// Init http server
	server = api.NewServer(ceodStore, report.NewPDFRenderer(), scope, tz)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	initialCtx = nil
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
