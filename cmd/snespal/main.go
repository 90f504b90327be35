package main

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bodgit/snespal"
	"github.com/bodgit/snespal/history"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const defaultDB = "snespal.db"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:  "version, V",
		Usage: "print the version",
	}
}

func newLogger(c *cli.Context) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
	if c.Bool("verbose") {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Runs fn against a session holding the palette in file and writes the
// result back to file, whatever fn did to the session's filename
func editSession(file string, depth int, logger logrus.FieldLogger, fn func(*snespal.Session) error) error {
	s := snespal.NewSession(depth, logger)
	s.SetNotifier(snespal.NotifierFunc(func(status snespal.Status) {
		if status.Message != "" {
			logger.Info(status.Message)
		}
	}))

	if err := s.Open(file); err != nil {
		return err
	}
	if err := fn(s); err != nil {
		return err
	}
	return s.Save(file)
}

func editFile(c *cli.Context, file string, fn func(*snespal.Session) error) error {
	if err := editSession(file, c.Int("history"), newLogger(c), fn); err != nil {
		return cli.NewExitError(err, 1)
	}
	return nil
}

func openDB(c *cli.Context) (*snespal.PaletteDB, error) {
	return snespal.NewPaletteDB(c.String("db"), newLogger(c))
}

func loadImage(file string) (image.Image, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	return m, err
}

func main() {
	// A missing .env file is fine
	_ = godotenv.Load()

	app := cli.NewApp()

	app.Name = "snespal"
	app.Usage = "Super Nintendo palette editor"
	app.Version = "1.0.0"

	cwd, err := os.Getwd()
	if err != nil {
		logrus.Fatal(err)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"SNESPAL_DB"},
			Value:   filepath.Join(cwd, defaultDB),
			Usage:   "path to palette library database",
		},
		&cli.IntFlag{
			Name:    "history",
			EnvVars: []string{"SNESPAL_HISTORY"},
			Value:   history.DefaultDepth,
			Usage:   "maximum number of undo steps, 0 for no limit",
		},
		&cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "show",
			Usage:     "Print the colors in a palette",
			ArgsUsage: "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, err := snespal.Load(c.Args().First())
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return show(os.Stdout, t)
			},
		},
		{
			Name:      "convert",
			Usage:     "Convert a palette between formats",
			ArgsUsage: "SOURCE DESTINATION",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, err := snespal.Load(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := snespal.Save(t, c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "batch",
			Usage:     "Convert every palette under a directory",
			ArgsUsage: "DIRECTORY",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "format",
					Value: ".tpl",
					Usage: "extension of the format to convert to",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				if err := snespal.Convert(context.Background(), c.Args().First(), c.String("format"), newLogger(c)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "copy",
			Usage:     "Copy one sub-palette over another",
			ArgsUsage: "FILE SOURCE DESTINATION",
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				src, err := snespal.ParseSubPalette(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				dst, err := snespal.ParseSubPalette(c.Args().Get(2))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return editFile(c, c.Args().First(), func(s *snespal.Session) error {
					return s.CopyPalette(src, dst)
				})
			},
		},
		{
			Name:      "rotate",
			Usage:     "Rotate colors 1 to 15 of a sub-palette",
			ArgsUsage: "FILE PALETTE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				p, err := snespal.ParseSubPalette(c.Args().Get(1))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return editFile(c, c.Args().First(), func(s *snespal.Session) error {
					return s.RotatePalette(p)
				})
			},
		},
		{
			Name:      "set",
			Usage:     "Set a single color",
			ArgsUsage: "FILE INDEX COLOR",
			Action: func(c *cli.Context) error {
				if c.NArg() < 3 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				i, err := strconv.ParseInt(c.Args().Get(1), 0, 0)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				color, err := snespal.ParseColor(c.Args().Get(2))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return editFile(c, c.Args().First(), func(s *snespal.Session) error {
					return s.SetColor(int(i), color)
				})
			},
		},
		{
			Name:      "import",
			Usage:     "Reduce an image to 16 colors and write them to a sub-palette",
			ArgsUsage: "IMAGE FILE",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "palette",
					Value: "00",
					Usage: "sub-palette to write",
				},
				&cli.BoolFlag{
					Name:  "all",
					Usage: "replace the whole palette with up to 256 colors",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				m, err := loadImage(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				file := c.Args().Get(1)
				if c.Bool("all") {
					if err := snespal.Save(snespal.FromImage(m), file); err != nil {
						return cli.NewExitError(err, 1)
					}
					return nil
				}

				p, err := snespal.ParseSubPalette(c.String("palette"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				return editFile(c, file, func(s *snespal.Session) error {
					return s.Dispatch(snespal.Event{Command: snespal.CommandImport, Image: m, Src: p})
				})
			},
		},
		{
			Name:        "edit",
			Usage:       "Apply a script of edits read from standard input",
			Description: "Each line is one of: set INDEX COLOR, click X Y COLOR, pick X Y, draw, down X Y, move X Y, up, copy SRC DST, rotate PALETTE, undo, redo, new, save [FILE].",
			ArgsUsage:   "FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				return editFile(c, c.Args().First(), func(s *snespal.Session) error {
					return runScript(s, os.Stdin)
				})
			},
		},
		{
			Name:      "store",
			Usage:     "Store a palette in the library",
			ArgsUsage: "FILE NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				t, err := snespal.Load(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				db, err := openDB(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				if err := db.Store(c.Args().Get(1), t); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:      "restore",
			Usage:     "Write a palette from the library to a file",
			ArgsUsage: "NAME FILE",
			Action: func(c *cli.Context) error {
				if c.NArg() < 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := openDB(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				t, err := db.Fetch(c.Args().Get(0))
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				if err := snespal.Save(t, c.Args().Get(1)); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:  "list",
			Usage: "List the palettes in the library",
			Action: func(c *cli.Context) error {
				db, err := openDB(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				names, err := db.List()
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				for _, name := range names {
					fmt.Println(name)
				}

				return nil
			},
		},
		{
			Name:      "delete",
			Usage:     "Remove a palette from the library",
			ArgsUsage: "NAME",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				db, err := openDB(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer db.Close()

				if err := db.Delete(c.Args().First()); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}
