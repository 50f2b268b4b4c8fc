package drive

import (
	"context"
	"fmt"
	"path"

	"file-relay/internal/domain/entities"
	"file-relay/pkg/errors"
	"file-relay/pkg/file"

	mega "github.com/t3rm1n4l/go-mega"
)

type MegaDrive struct {
	email    string
	password string
	client   *mega.Mega
}

func NewMegaDrive(email, password string) *MegaDrive {
	return &MegaDrive{email: email, password: password}
}

func (d *MegaDrive) Name() string { return "mega" }

func (d *MegaDrive) Connect(_ context.Context) error {
	client := mega.New()
	if err := client.Login(d.email, d.password); err != nil {
		return err
	}
	d.client = client
	return nil
}

func (d *MegaDrive) Close() error {
	d.client = nil
	return nil
}

// lookup walks from the root following each path segment. Every segment
// but the last must name a folder.
func (d *MegaDrive) lookup(remotePath string) (*mega.Node, error) {
	node := d.client.FS.GetRoot()
	parts := file.SplitPath(remotePath)
	for i, part := range parts {
		children, err := d.client.FS.GetChildren(node)
		if err != nil {
			return nil, err
		}
		last := i == len(parts)-1
		child := pickChild(children, part, !last)
		if child == nil {
			return nil, errors.ErrNotFound(remotePath)
		}
		node = child
	}
	return node, nil
}

type megaNode interface {
	comparable
	GetName() string
	GetType() int
}

// pickChild returns the first node called name, or the zero value. With
// foldersOnly set, files sharing the name are skipped.
func pickChild[N megaNode](nodes []N, name string, foldersOnly bool) N {
	var zero N
	for _, n := range nodes {
		if n == zero || n.GetName() != name {
			continue
		}
		if foldersOnly && n.GetType() != mega.FOLDER {
			continue
		}
		return n
	}
	return zero
}

func (d *MegaDrive) List(_ context.Context, folder string) ([]entities.DriveEntry, error) {
	node, err := d.lookup(folder)
	if err != nil {
		return nil, err
	}
	if node.GetType() != mega.FOLDER && node.GetType() != mega.ROOT {
		return []entities.DriveEntry{toEntry(node, file.JoinPath(folder))}, nil
	}
	var entries []entities.DriveEntry
	if err := d.walk(node, file.JoinPath(folder), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (d *MegaDrive) walk(node *mega.Node, prefix string, out *[]entities.DriveEntry) error {
	children, err := d.client.FS.GetChildren(node)
	if err != nil {
		return err
	}
	for _, c := range children {
		p := path.Join(prefix, c.GetName())
		*out = append(*out, toEntry(c, p))
		if c.GetType() == mega.FOLDER {
			if err := d.walk(c, p, out); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *MegaDrive) Upload(_ context.Context, localPath, remotePath string) (*entities.DriveEntry, error) {
	dir, name := path.Split(file.JoinPath(remotePath))
	parent, err := d.ensureFolder(dir)
	if err != nil {
		return nil, err
	}
	node, err := d.client.UploadFile(localPath, parent, name, nil)
	if err != nil {
		return nil, fmt.Errorf("mega upload %s: %w", remotePath, err)
	}
	entry := toEntry(node, file.JoinPath(remotePath))
	return &entry, nil
}

func (d *MegaDrive) Download(_ context.Context, remotePath, localPath string) error {
	node, err := d.lookup(remotePath)
	if err != nil {
		return err
	}
	if node.GetType() != mega.FILE {
		return fmt.Errorf("%s is not a file", remotePath)
	}
	return d.client.DownloadFile(node, localPath, nil)
}

func (d *MegaDrive) Delete(_ context.Context, remotePath string) (bool, error) {
	if len(file.SplitPath(remotePath)) == 0 {
		return false, fmt.Errorf("refusing to delete the drive root")
	}
	node, err := d.lookup(remotePath)
	if err != nil {
		return false, err
	}
	// moves to the rubbish bin rather than destroying
	if err := d.client.Delete(node, false); err != nil {
		return false, err
	}
	return true, nil
}

func (d *MegaDrive) Mkdir(_ context.Context, folderPath string) error {
	_, err := d.ensureFolder(folderPath)
	return err
}

func (d *MegaDrive) ensureFolder(folderPath string) (*mega.Node, error) {
	node := d.client.FS.GetRoot()
	for _, part := range file.SplitPath(folderPath) {
		children, err := d.client.FS.GetChildren(node)
		if err != nil {
			return nil, err
		}
		child := pickChild(children, part, true)
		if child == nil {
			child, err = d.client.CreateDir(part, node)
			if err != nil {
				return nil, fmt.Errorf("mega mkdir %s: %w", part, err)
			}
		}
		node = child
	}
	return node, nil
}

func (d *MegaDrive) Info(_ context.Context, remotePath string) (*entities.DriveEntry, error) {
	node, err := d.lookup(remotePath)
	if err != nil {
		return nil, err
	}
	entry := toEntry(node, file.JoinPath(remotePath))
	return &entry, nil
}

func toEntry(n *mega.Node, p string) entities.DriveEntry {
	entry := entities.DriveEntry{
		Name:       n.GetName(),
		Path:       p,
		Type:       entities.EntryFile,
		Size:       n.GetSize(),
		Timestamp:  n.GetTimeStamp(),
		DownloadID: n.GetHash(),
	}
	if n.GetType() == mega.FOLDER || n.GetType() == mega.ROOT {
		entry.Type = entities.EntryFolder
		entry.Size = 0
	}
	return entry
}
