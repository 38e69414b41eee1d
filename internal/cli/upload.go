package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"adminctl/pkg/api"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file> [file...]",
	Short: "Upload one or more files",
	Long: `Upload files to the API. A single file goes through the single-upload
endpoint; several files are posted together in one multipart request.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client, err := newClient(cmd)
		if err != nil {
			er(err)
		}
		ctx := context.Background()

		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				er(err)
			}
			defer f.Close()
			stored, err := client.UploadSingle(ctx, filepath.Base(args[0]), f)
			if err != nil {
				er(fmt.Sprintf("Failed to upload the file: %v", err))
			}
			printStored(stored)
			return
		}

		files := make([]api.UploadFile, 0, len(args))
		handles := make([]*os.File, 0, len(args))
		defer func() {
			for _, h := range handles {
				h.Close()
			}
		}()
		for _, path := range args {
			f, err := os.Open(path)
			if err != nil {
				er(err)
			}
			handles = append(handles, f)
			files = append(files, api.UploadFile{Name: filepath.Base(path), Reader: f})
		}
		stored, err := client.UploadMultiple(ctx, files)
		if err != nil {
			er(fmt.Sprintf("Failed to upload the selected files: %v", err))
		}
		for _, s := range stored {
			printStored(s)
		}
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
