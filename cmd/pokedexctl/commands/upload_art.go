package commands

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"pokedex/internal/repository"
	"pokedex/internal/repository/postgres"
	"pokedex/internal/storage"
)

func uploadArtCmd() *cobra.Command {
	var itemID, file string
	cmd := &cobra.Command{
		Use:   "upload-art",
		Short: "Store shop item artwork in object storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := storage.NewMinIO(cfg.MinIO)
			if err != nil {
				return err
			}
			key, err := uploadArt(cmd.Context(), store, postgres.NewShopPostgres(db), itemID, file)
			if err != nil {
				return err
			}
			log.Info("artwork uploaded", map[string]any{"item_id": itemID, "key": key})
			return nil
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "shop item ID")
	cmd.Flags().StringVar(&file, "file", "", "image file")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

// uploadArt stores the file under the item's artwork key and records the key on the item. Artwork
// stored under a different key is removed once the new key is recorded.
func uploadArt(ctx context.Context, store storage.Storage, shop repository.ShopRepository, itemID, path string) (string, error) {
	item, err := shop.FindItem(ctx, itemID)
	if err != nil {
		return "", fmt.Errorf("find item %s: %w", itemID, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return "", err
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := storage.ItemArtKey(itemID, filepath.Base(path))
	if _, err := store.Put(ctx, key, f, storage.PutObjectOptions{
		ContentType: contentType,
		Size:        st.Size(),
	}); err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if err := shop.SetImageKey(ctx, itemID, key); err != nil {
		return "", fmt.Errorf("record image key: %w", err)
	}

	if old := item.ImageKey; old != "" && old != key {
		if err := store.Delete(ctx, old); err != nil {
			log.Warn("previous artwork not removed", map[string]any{"item_id": itemID, "key": old, "error": err.Error()})
		}
	}
	return key, nil
}
