// sitegen, şablon siteden yeni bir müşteri kopyası üreten CLI aracıdır.
//
// Şablon ağacını kopyalar, {{BUSINESS_NAME}} gibi placeholder'ları işletme
// bilgileriyle değiştirir, taze secret'lı bir .env yazar ve istenirse
// çıktıyı müşteriye teslim edilecek bir zip arşivine paketler.
//
// Kullanım:
//
//	sitegen generate -template ./template -out ./sites/acme -name "Acme Photography" [-tagline ...] [-email ...] [-phone ...] [-zip ./acme.zip]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dspstudio/backend/pkg/sitegen"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "generate":
		if err := cmdGenerate(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "generate failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func cmdGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	templateDir := fs.String("template", "", "path to the template site directory")
	out := fs.String("out", "", "output directory for the generated site")
	name := fs.String("name", "", "business name (required)")
	tagline := fs.String("tagline", "", "business tagline")
	email := fs.String("email", "", "contact email (also used as admin email)")
	phone := fs.String("phone", "", "contact phone")
	zipPath := fs.String("zip", "", "optional path for a zip archive of the generated site")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *templateDir == "" || *out == "" || *name == "" {
		return fmt.Errorf("-template, -out and -name are required")
	}

	manifest, err := sitegen.Generate(*templateDir, *out, sitegen.Params{
		BusinessName: *name,
		Tagline:      *tagline,
		ContactEmail: *email,
		ContactPhone: *phone,
	})
	if err != nil {
		return err
	}

	fmt.Printf("site generated: %s (slug=%s)\n", *out, manifest.Slug)

	if *zipPath != "" {
		if err := sitegen.ZipDir(*out, *zipPath); err != nil {
			return fmt.Errorf("zip failed: %w", err)
		}
		fmt.Printf("archive written: %s\n", *zipPath)
	}

	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage: sitegen <command> [flags]

commands:
  generate    copy the template site for a new business

run "sitegen generate -h" for flags`)
}
