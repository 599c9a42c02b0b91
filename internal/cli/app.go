// Package cli is the presentation glue around the engine: a small REPL that
// authenticates a user and drives the account and customer operations. All
// business rules live in the internal/accounts and internal/customers
// services; this package only collects input, checks permissions, and
// renders results.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/recordkeeper/internal/accounts"
	"github.com/dmitrijs2005/recordkeeper/internal/auth"
	"github.com/dmitrijs2005/recordkeeper/internal/backup"
	"github.com/dmitrijs2005/recordkeeper/internal/config"
	"github.com/dmitrijs2005/recordkeeper/internal/customers"
	"github.com/dmitrijs2005/recordkeeper/internal/logging"
	"github.com/dmitrijs2005/recordkeeper/internal/sampledata"
	"github.com/dmitrijs2005/recordkeeper/internal/storage"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	accounts  *accounts.Service
	customers *customers.Service
	samples   *sampledata.Client
	backups   *backup.Service

	// session is the one authenticated caller of this process; nil means
	// anonymous. The account collection stays the source of truth.
	session *auth.Session

	accountsPath  string
	customersPath string

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := storage.NewStore(cfg.DataDir, log)
	if err != nil {
		return nil, err
	}

	accountsRepo := accounts.NewFileRepository(store, cfg.AccountsFile)
	accountsSvc := accounts.NewService(accountsRepo, cfg, log)
	accountsSvc.Load(ctx)
	if err := accountsSvc.Bootstrap(ctx); err != nil {
		return nil, err
	}

	customersRepo := customers.NewFileRepository(store, cfg.CustomersFile)
	customersSvc := customers.NewService(customersRepo, log)
	customersSvc.Load(ctx)

	return &App{
		config:        cfg,
		log:           log,
		accounts:      accountsSvc,
		customers:     customersSvc,
		samples:       sampledata.NewClient(cfg.SampleSourceURL, cfg.SampleFetchTimeout, log),
		backups:       backup.NewService(cfg, log),
		accountsPath:  accountsRepo.FilePath(),
		customersPath: customersRepo.FilePath(),
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return "anonymous"
	}
	return a.session.Username + " (" + string(a.session.Role) + ")"
}
