// Package layoutfs serves the most recently composed frame as a small
// read-only 9P file tree:
//
//	frame	one line per fill, in paint order: z minx miny maxx maxy rrggbbaa
//	nframe	number of frames published
//	size	viewport size as WIDTHxHEIGHT
//
// A file's contents are fixed when it is opened, so one open file always
// describes a single frame.
package layoutfs

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"os/user"
	"strings"
	"sync"
	"time"

	"9fans.net/go/plan9"
	"github.com/rjkroege/aegis/render"
)

// Errors returned by the file server.
var (
	ErrPermission = os.ErrPermission
	ErrNotExist   = os.ErrNotExist
	ErrNotDir     = errors.New("not a directory")
	ErrBadFid     = errors.New("unknown fid")
	ErrFidInUse   = errors.New("fid already in use")
)

// Bounds on the message size agreed in Tversion. minmsg leaves room for
// a read header and one directory entry.
const (
	maxmsg = 8192 + plan9.IOHDRSZ
	minmsg = 256
)

// maxwelem is the most names a single Twalk may carry.
const maxwelem = 16

const (
	qdir = iota
	qframe
	qnframe
	qsize
)

type dirent struct {
	name string
	t    uint8
	qid  uint64
	perm plan9.Perm
}

var dirtab = []dirent{
	{".", plan9.QTDIR, qdir, 0555 | plan9.DMDIR},
	{"frame", plan9.QTFILE, qframe, 0444},
	{"nframe", plan9.QTFILE, qnframe, 0444},
	{"size", plan9.QTFILE, qsize, 0444},
}

// Snapshot is a published frame.
type Snapshot struct {
	Size image.Point
	Ops  []render.Op
	N    uint64
}

// Server holds the last published frame and answers 9P requests about it.
type Server struct {
	mu   sync.Mutex
	snap Snapshot

	username string
	clock    func() time.Time
}

// New returns a Server with nothing published.
func New() *Server {
	return &Server{
		username: getuser(),
		clock:    time.Now,
	}
}

// Publish replaces the served frame. ops are copied.
func (s *Server) Publish(size image.Point, ops []render.Op) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = Snapshot{
		Size: size,
		Ops:  append([]render.Op(nil), ops...),
		N:    s.snap.N + 1,
	}
}

// Snapshot returns the last published frame.
func (s *Server) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (snap Snapshot) contents(q uint64) []byte {
	var sb strings.Builder
	switch q {
	case qframe:
		for _, op := range snap.Ops {
			fmt.Fprintf(&sb, "%d %d %d %d %d %08x\n", op.Z, op.R.Min.X, op.R.Min.Y, op.R.Max.X, op.R.Max.Y, uint32(op.Color))
		}
	case qnframe:
		fmt.Fprintf(&sb, "%d\n", snap.N)
	case qsize:
		fmt.Fprintf(&sb, "%dx%d\n", snap.Size.X, snap.Size.Y)
	}
	return []byte(sb.String())
}

func (s *Server) dir(d dirent, snap Snapshot) *plan9.Dir {
	clock := uint32(s.clock().Unix())
	var length uint64
	if d.t != plan9.QTDIR {
		length = uint64(len(snap.contents(d.qid)))
	}
	return &plan9.Dir{
		Qid:    plan9.Qid{Path: d.qid, Vers: uint32(snap.N), Type: d.t},
		Mode:   d.perm,
		Atime:  clock,
		Mtime:  clock,
		Length: length,
		Name:   d.name,
		Uid:    s.username,
		Gid:    s.username,
		Muid:   s.username,
	}
}

// fid is the server side state of a client fid.
type fid struct {
	d    dirent
	open bool
	data []byte
}

// conn is one 9P connection.
type conn struct {
	s     *Server
	rwc   io.ReadWriteCloser
	msize uint32
	fids  map[uint32]*fid
}

// Serve answers 9P2000 requests on rwc until it is closed.
func (s *Server) Serve(rwc io.ReadWriteCloser) error {
	c := &conn{
		s:     s,
		rwc:   rwc,
		msize: maxmsg,
		fids:  make(map[uint32]*fid),
	}
	defer rwc.Close()
	for {
		tx, err := plan9.ReadFcall(rwc)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return fmt.Errorf("layoutfs: read: %w", err)
		}
		rx, err := c.handle(tx)
		if err != nil {
			rx = &plan9.Fcall{Type: plan9.Rerror, Ename: err.Error()}
		} else {
			rx.Type = tx.Type + 1
		}
		rx.Tag = tx.Tag
		if err := plan9.WriteFcall(rwc, rx); err != nil {
			return fmt.Errorf("layoutfs: write: %w", err)
		}
	}
}

func (c *conn) handle(tx *plan9.Fcall) (*plan9.Fcall, error) {
	switch tx.Type {
	case plan9.Tversion:
		return c.version(tx)
	case plan9.Tauth:
		return nil, errors.New("layoutfs: authentication not required")
	case plan9.Tflush:
		// Requests are answered in order, so there is never one to flush.
		return &plan9.Fcall{}, nil
	case plan9.Tattach:
		return c.attach(tx)
	case plan9.Twalk:
		return c.walk(tx)
	case plan9.Topen:
		return c.open(tx)
	case plan9.Tread:
		return c.read(tx)
	case plan9.Tstat:
		return c.stat(tx)
	case plan9.Tclunk:
		if _, ok := c.fids[tx.Fid]; !ok {
			return nil, ErrBadFid
		}
		delete(c.fids, tx.Fid)
		return &plan9.Fcall{}, nil
	case plan9.Tremove:
		if _, ok := c.fids[tx.Fid]; !ok {
			return nil, ErrBadFid
		}
		delete(c.fids, tx.Fid)
		return nil, ErrPermission
	case plan9.Tcreate, plan9.Twrite, plan9.Twstat:
		return nil, ErrPermission
	}
	return nil, fmt.Errorf("layoutfs: unexpected message type %d", tx.Type)
}

func (c *conn) version(tx *plan9.Fcall) (*plan9.Fcall, error) {
	if tx.Version != "9P2000" {
		return nil, errors.New("unrecognized 9P version")
	}
	if tx.Msize < minmsg {
		return nil, errors.New("msize too small")
	}
	c.fids = make(map[uint32]*fid)
	c.msize = min(tx.Msize, maxmsg)
	return &plan9.Fcall{Version: "9P2000", Msize: c.msize}, nil
}

func (c *conn) attach(tx *plan9.Fcall) (*plan9.Fcall, error) {
	if _, ok := c.fids[tx.Fid]; ok {
		return nil, ErrFidInUse
	}
	f := &fid{d: dirtab[0]}
	c.fids[tx.Fid] = f
	return &plan9.Fcall{Qid: c.s.dir(f.d, c.s.Snapshot()).Qid}, nil
}

func (c *conn) walk(tx *plan9.Fcall) (*plan9.Fcall, error) {
	f, ok := c.fids[tx.Fid]
	if !ok {
		return nil, ErrBadFid
	}
	if f.open {
		return nil, errors.New("layoutfs: walk of open file")
	}
	if len(tx.Wname) > maxwelem {
		return nil, errors.New("layoutfs: too many names in walk")
	}
	if tx.Newfid != tx.Fid {
		if _, ok := c.fids[tx.Newfid]; ok {
			return nil, ErrFidInUse
		}
	}

	snap := c.s.Snapshot()
	rx := &plan9.Fcall{}
	d := f.d
	for _, name := range tx.Wname {
		next, err := walk1(d, name)
		if err != nil {
			if len(rx.Wqid) == 0 {
				return nil, err
			}
			// A partial walk succeeds but leaves newfid unassigned.
			return rx, nil
		}
		d = next
		rx.Wqid = append(rx.Wqid, c.s.dir(d, snap).Qid)
	}

	c.fids[tx.Newfid] = &fid{d: d}
	return rx, nil
}

func walk1(d dirent, name string) (dirent, error) {
	if d.t&plan9.QTDIR == 0 {
		return d, ErrNotDir
	}
	if name == ".." || name == "." {
		return dirtab[0], nil
	}
	for _, e := range dirtab[1:] {
		if e.name == name {
			return e, nil
		}
	}
	return d, ErrNotExist
}

func (c *conn) open(tx *plan9.Fcall) (*plan9.Fcall, error) {
	f, ok := c.fids[tx.Fid]
	if !ok {
		return nil, ErrBadFid
	}
	if f.open {
		return nil, errors.New("layoutfs: file already open")
	}
	if tx.Mode&^uint8(plan9.OCEXEC) != plan9.OREAD {
		return nil, ErrPermission
	}
	snap := c.s.Snapshot()
	if f.d.t != plan9.QTDIR {
		f.data = snap.contents(f.d.qid)
	}
	f.open = true
	return &plan9.Fcall{Qid: c.s.dir(f.d, snap).Qid}, nil
}

func (c *conn) read(tx *plan9.Fcall) (*plan9.Fcall, error) {
	f, ok := c.fids[tx.Fid]
	if !ok {
		return nil, ErrBadFid
	}
	if !f.open {
		return nil, errors.New("layoutfs: read of unopened file")
	}
	count := min(tx.Count, c.msize-plan9.IOHDRSZ)

	rx := &plan9.Fcall{}
	if f.d.t == plan9.QTDIR {
		snap := c.s.Snapshot()
		rx.Data = dirread(tx.Offset, count, func(i int) *plan9.Dir {
			if i+1 >= len(dirtab) {
				return nil
			}
			return c.s.dir(dirtab[i+1], snap)
		})
	} else {
		rx.Data = readat(f.data, tx.Offset, count)
	}
	rx.Count = uint32(len(rx.Data))
	return rx, nil
}

func (c *conn) stat(tx *plan9.Fcall) (*plan9.Fcall, error) {
	f, ok := c.fids[tx.Fid]
	if !ok {
		return nil, ErrBadFid
	}
	b, err := c.s.dir(f.d, c.s.Snapshot()).Bytes()
	if err != nil {
		return nil, err
	}
	if len(b) > int(c.msize-plan9.IOHDRSZ) {
		return nil, errors.New("msize too small")
	}
	return &plan9.Fcall{Stat: b}, nil
}

// readat returns at most count bytes of src starting at off.
func readat(src []byte, off uint64, count uint32) []byte {
	if off >= uint64(len(src)) {
		return nil
	}
	end := off + uint64(count)
	if end > uint64(len(src)) {
		end = uint64(len(src))
	}
	return src[off:end]
}

// dirread packs the directory entries made by gen, which returns nil
// past the last entry, into a read reply for offset off. Entries are
// never split across reads.
func dirread(off uint64, count uint32, gen func(i int) *plan9.Dir) []byte {
	data := make([]byte, 0, count)
	var pos uint64
	for i := 0; ; i++ {
		d := gen(i)
		if d == nil {
			break
		}
		b, err := d.Bytes()
		if err != nil {
			break
		}
		if pos >= off {
			if len(data)+len(b) > int(count) {
				break
			}
			data = append(data, b...)
		}
		pos += uint64(len(b))
	}
	return data
}

func getuser() string {
	u, err := user.Current()
	if err != nil {
		return "none"
	}
	return u.Username
}
