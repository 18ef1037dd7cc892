package share

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"net"

	qrcode "github.com/skip2/go-qrcode"
)

const qrImageSize = 300

var (
	qrForeground = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	qrBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Generator 生成指向在线作品集页面的分享链接及其二维码。
// 每次调用都会重新枚举网卡，不做缓存。
type Generator struct {
	scheme string
	port   int
}

// NewGenerator 返回 Generator。
func NewGenerator(scheme string, port int) *Generator {
	return &Generator{scheme: scheme, port: port}
}

// Generate 返回分享 URL 与编码为 PNG data URI 的二维码。
func (g *Generator) Generate() (string, string, error) {
	url := fmt.Sprintf("%s://%s:%d/portfolio", g.scheme, LocalIP(), g.port)

	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return "", "", fmt.Errorf("encode qr: %w", err)
	}
	qr.ForegroundColor = qrForeground
	qr.BackgroundColor = qrBackground

	png, err := qr.PNG(qrImageSize)
	if err != nil {
		return "", "", fmt.Errorf("render qr png: %w", err)
	}

	dataURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	return url, dataURI, nil
}

// LocalIP 返回第一个非回环的 IPv4 地址；找不到时回退 "localhost"，
// 保证分享链接始终可构造。
func LocalIP() string {
	interfaces, err := net.Interfaces()
	if err != nil {
		return "localhost"
	}
	for _, iface := range interfaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			ipNet, ok := addr.(*net.IPNet)
			if !ok || ipNet.IP.IsLoopback() {
				continue
			}
			if ip4 := ipNet.IP.To4(); ip4 != nil {
				return ip4.String()
			}
		}
	}
	return "localhost"
}
